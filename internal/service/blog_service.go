package service

import (
	"errors"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
	"codaverse/internal/storage"
)

type BlogService interface {
	List(viewer *models.User, tagSlug string) ([]dto.BlogResponse, error)
	Get(viewer *models.User, id int64) (*dto.BlogResponse, error)
	// Create persists the blog, lazily creating tags by lower-cased name.
	// imagePath is the stored media-relative path, empty when no image was
	// uploaded.
	Create(author *models.User, req *dto.CreateBlogRequest, imagePath string) (*dto.BlogResponse, error)
	// Update applies the non-nil fields; a non-empty imagePath replaces the
	// stored image and the previous file is removed.
	Update(actor *models.User, id int64, req *dto.UpdateBlogRequest, imagePath string) (*dto.BlogResponse, error)
	Delete(actor *models.User, id int64) error
	Like(viewer *models.User, id int64) (*dto.BlogLikeResponse, error)
	Tags() ([]dto.TagResponse, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
	tagRepo  repository.TagRepository
	media    *storage.MediaStore
}

func NewBlogService(blogRepo repository.BlogRepository, tagRepo repository.TagRepository, media *storage.MediaStore) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		tagRepo:  tagRepo,
		media:    media,
	}
}

func (s *blogService) List(viewer *models.User, tagSlug string) ([]dto.BlogResponse, error) {
	blogs, err := s.blogRepo.FindAll(tagSlug)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		resp, err := s.toResponse(viewer, &blogs[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *blogService) Get(viewer *models.User, id int64) (*dto.BlogResponse, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.toResponse(viewer, blog)
}

func (s *blogService) Create(author *models.User, req *dto.CreateBlogRequest, imagePath string) (*dto.BlogResponse, error) {
	blog := &models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: author.ID,
		Image:    imagePath,
	}
	if err := s.blogRepo.CreateWithTags(blog, req.Tags); err != nil {
		return nil, err
	}

	// Reload for author and tags.
	created, err := s.blogRepo.FindByID(blog.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(author, created)
}

func (s *blogService) Update(actor *models.User, id int64, req *dto.UpdateBlogRequest, imagePath string) (*dto.BlogResponse, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if blog.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}

	oldImage := blog.Image
	if imagePath != "" {
		blog.Image = imagePath
	}
	if err := s.blogRepo.Update(blog); err != nil {
		return nil, err
	}
	if imagePath != "" && oldImage != "" && oldImage != imagePath {
		// The replaced file cleanup is best effort; the row already points
		// at the new image.
		_ = s.media.Remove(oldImage)
	}
	return s.toResponse(actor, blog)
}

func (s *blogService) Delete(actor *models.User, id int64) error {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if blog.AuthorID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := s.blogRepo.Delete(id); err != nil {
		return err
	}
	if blog.Image != "" {
		// Stored file cleanup is best effort; the row is already gone.
		_ = s.media.Remove(blog.Image)
	}
	return nil
}

func (s *blogService) Like(viewer *models.User, id int64) (*dto.BlogLikeResponse, error) {
	if _, err := s.blogRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	liked, err := s.blogRepo.ToggleLike(id, viewer)
	if err != nil {
		return nil, err
	}

	count, err := s.blogRepo.CountLikes(id)
	if err != nil {
		return nil, err
	}

	return &dto.BlogLikeResponse{
		LikesCount:   count,
		UserHasLiked: liked,
	}, nil
}

func (s *blogService) Tags() ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TagResponse, 0, len(tags))
	for i := range tags {
		responses = append(responses, *dto.FromModelToTagResponse(&tags[i]))
	}
	return responses, nil
}

func (s *blogService) toResponse(viewer *models.User, blog *models.Blog) (*dto.BlogResponse, error) {
	likes, err := s.blogRepo.CountLikes(blog.ID)
	if err != nil {
		return nil, err
	}

	liked := false
	if viewer != nil {
		liked, err = s.blogRepo.HasLiked(blog.ID, viewer.ID)
		if err != nil {
			return nil, err
		}
	}

	return dto.FromModelToBlogResponse(blog, likes, liked, s.media.URL(blog.Image)), nil
}
