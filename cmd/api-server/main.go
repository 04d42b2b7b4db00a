package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"codaverse/database"
	"codaverse/internal/config"
	"codaverse/internal/handler"
	"codaverse/internal/repository"
	"codaverse/internal/router"
	"codaverse/internal/service"
	"codaverse/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	media, err := storage.NewMediaStore(cfg.MediaRoot, cfg.MediaBaseURL)
	if err != nil {
		logger.Error("media store init failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	discussionRepo := repository.NewDiscussionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	languageRepo := repository.NewLanguageRepository(db)
	snippetRepo := repository.NewSnippetRepository(db)
	tagRepo := repository.NewTagRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	discussionService := service.NewDiscussionService(discussionRepo, categoryRepo)
	commentService := service.NewCommentService(commentRepo, discussionRepo)
	newsService := service.NewNewsService(newsRepo)
	languageService := service.NewLanguageService(languageRepo)
	snippetService := service.NewSnippetService(snippetRepo, languageRepo)
	blogService := service.NewBlogService(blogRepo, tagRepo, media)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Category:   handler.NewCategoryHandler(categoryService),
		Discussion: handler.NewDiscussionHandler(discussionService),
		Comment:    handler.NewCommentHandler(commentService),
		News:       handler.NewNewsHandler(newsService),
		Language:   handler.NewLanguageHandler(languageService),
		Snippet:    handler.NewSnippetHandler(snippetService),
		Blog:       handler.NewBlogHandler(blogService, media),
		UserAdmin:  handler.NewUserAdminHandler(userService),
		Group:      handler.NewGroupHandler(groupService),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	router.RegisterRoutes(r, handlers, authService, media, cfg.LoginRatePerMinute)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
