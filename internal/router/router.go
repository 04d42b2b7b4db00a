package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"codaverse/internal/handler"
	"codaverse/internal/middleware"
	"codaverse/internal/service"
	"codaverse/internal/storage"
)

// Handlers bundles everything RegisterRoutes needs to wire the API.
type Handlers struct {
	Auth       *handler.AuthHandler
	Category   *handler.CategoryHandler
	Discussion *handler.DiscussionHandler
	Comment    *handler.CommentHandler
	News       *handler.NewsHandler
	Language   *handler.LanguageHandler
	Snippet    *handler.SnippetHandler
	Blog       *handler.BlogHandler
	UserAdmin  *handler.UserAdminHandler
	Group      *handler.GroupHandler
}

// RegisterRoutes wires every endpoint onto the engine. Auth levels:
// optional (anonymous reads), required (bearer token), admin.
func RegisterRoutes(r *gin.Engine, h Handlers, authService service.AuthService, media *storage.MediaStore, loginRatePerMinute int) {
	authRequired := middleware.Authenticate(authService)
	authOptional := middleware.OptionalAuthenticate(authService)
	adminOnly := middleware.RequireAdmin()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded blog images, served straight from the media root.
	r.Static("/"+storage.BlogImageDir, filepath.Join(media.Root(), storage.BlogImageDir))

	api := r.Group("/api")

	api.POST("/login", middleware.RateLimit(loginRatePerMinute), h.Auth.Login)

	discussions := api.Group("/discussions")
	{
		discussions.GET("", authOptional, h.Discussion.List)
		discussions.GET("/:id", authOptional, h.Discussion.Get)
		discussions.POST("", authRequired, h.Discussion.Create)
		discussions.PUT("/:id", authRequired, h.Discussion.Update)
		discussions.PATCH("/:id", authRequired, h.Discussion.Update)
		discussions.DELETE("/:id", authRequired, h.Discussion.Delete)
	}

	comments := api.Group("/comments", authRequired)
	{
		comments.GET("", h.Comment.List)
		comments.GET("/:id", h.Comment.Get)
		comments.POST("", h.Comment.Create)
		comments.PUT("/:id", h.Comment.Update)
		comments.PATCH("/:id", h.Comment.Update)
		comments.DELETE("/:id", h.Comment.Delete)
	}

	news := api.Group("/news")
	{
		news.GET("", h.News.List)
		news.GET("/:id", h.News.Get)
		news.POST("", authRequired, adminOnly, h.News.Create)
		news.PUT("/:id", authRequired, adminOnly, h.News.Update)
		news.DELETE("/:id", authRequired, adminOnly, h.News.Delete)
	}

	snippets := api.Group("/snippets", authRequired)
	{
		snippets.GET("", h.Snippet.List)
		snippets.GET("/:id", h.Snippet.Get)
		snippets.POST("", h.Snippet.Create)
		snippets.PUT("/:id", h.Snippet.Update)
		snippets.PATCH("/:id", h.Snippet.Update)
		snippets.DELETE("/:id", h.Snippet.Delete)
		snippets.POST("/:id/like", h.Snippet.Like)
		snippets.POST("/:id/dislike", h.Snippet.Dislike)
	}

	blogs := api.Group("/blogs", authRequired)
	{
		blogs.GET("", h.Blog.List)
		blogs.GET("/:id", h.Blog.Get)
		blogs.POST("", h.Blog.Create)
		blogs.PUT("/:id", h.Blog.Update)
		blogs.PATCH("/:id", h.Blog.Update)
		blogs.DELETE("/:id", h.Blog.Delete)
		blogs.POST("/:id/like", h.Blog.Like)
	}

	api.GET("/tags", authRequired, h.Blog.Tags)

	registerLanguageRoutes(api.Group("/languages", authRequired, adminOnly), h.Language)

	admin := api.Group("/admin", authRequired, adminOnly)
	{
		categories := admin.Group("/categories")
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.PATCH("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)

		// Languages live on both prefixes with identical admin gating.
		registerLanguageRoutes(admin.Group("/languages"), h.Language)

		roles := admin.Group("/roles")
		roles.GET("", h.Group.List)
		roles.GET("/:id", h.Group.Get)
		roles.POST("", h.Group.Create)
		roles.PUT("/:id", h.Group.Update)
		roles.PATCH("/:id", h.Group.Update)
		roles.DELETE("/:id", h.Group.Delete)

		admin.GET("/users", h.UserAdmin.List)
		admin.POST("/users/create", h.UserAdmin.Create)
		admin.PATCH("/users/:id/update", h.UserAdmin.Update)
		admin.PUT("/users/:id/update", h.UserAdmin.Update)
		admin.PATCH("/users/:id/toggle", h.UserAdmin.ToggleActive)
		admin.POST("/users/:id/toggle", h.UserAdmin.ToggleActive)
	}
}

func registerLanguageRoutes(g *gin.RouterGroup, h *handler.LanguageHandler) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
