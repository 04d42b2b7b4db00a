package service

import (
	"errors"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
)

const (
	defaultDiscussionPageSize = 20
	maxDiscussionPageSize     = 100
)

type DiscussionService interface {
	List(categorySlug string, page, pageSize int) (*dto.PaginatedDiscussionResponse, error)
	// Get returns the discussion with its comments and bumps the view counter.
	Get(id int64) (*dto.DiscussionResponse, error)
	Create(author *models.User, req *dto.CreateDiscussionRequest) (*dto.DiscussionResponse, error)
	Update(actor *models.User, id int64, req *dto.UpdateDiscussionRequest) (*dto.DiscussionResponse, error)
	Delete(actor *models.User, id int64) error
}

type discussionService struct {
	discussionRepo repository.DiscussionRepository
	categoryRepo   repository.CategoryRepository
}

func NewDiscussionService(discussionRepo repository.DiscussionRepository, categoryRepo repository.CategoryRepository) DiscussionService {
	return &discussionService{
		discussionRepo: discussionRepo,
		categoryRepo:   categoryRepo,
	}
}

func (s *discussionService) List(categorySlug string, page, pageSize int) (*dto.PaginatedDiscussionResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultDiscussionPageSize
	}
	if pageSize > maxDiscussionPageSize {
		pageSize = maxDiscussionPageSize
	}

	discussions, total, err := s.discussionRepo.FindAll(categorySlug, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DiscussionResponse, 0, len(discussions))
	for i := range discussions {
		responses = append(responses, *dto.FromModelToDiscussionResponse(&discussions[i]))
	}
	return dto.NewPaginatedDiscussionResponse(responses, int(total), page, pageSize), nil
}

func (s *discussionService) Get(id int64) (*dto.DiscussionResponse, error) {
	if err := s.discussionRepo.IncrementViews(id); err != nil {
		return nil, err
	}

	discussion, err := s.discussionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToDiscussionResponse(discussion), nil
}

func (s *discussionService) Create(author *models.User, req *dto.CreateDiscussionRequest) (*dto.DiscussionResponse, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	discussion := &models.Discussion{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		AuthorID:   author.ID,
	}
	if err := s.discussionRepo.Create(discussion); err != nil {
		return nil, err
	}

	// Reload for the nested author and category objects.
	created, err := s.discussionRepo.FindByID(discussion.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToDiscussionResponse(created), nil
}

func (s *discussionService) Update(actor *models.User, id int64, req *dto.UpdateDiscussionRequest) (*dto.DiscussionResponse, error) {
	discussion, err := s.discussionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if discussion.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		discussion.Title = *req.Title
	}
	if req.Content != nil {
		discussion.Content = *req.Content
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		discussion.CategoryID = *req.CategoryID
	}
	if req.IsPinned != nil {
		// Pinning is a moderation action.
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
		discussion.IsPinned = *req.IsPinned
	}

	if err := s.discussionRepo.Update(discussion); err != nil {
		return nil, err
	}

	updated, err := s.discussionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToDiscussionResponse(updated), nil
}

func (s *discussionService) Delete(actor *models.User, id int64) error {
	discussion, err := s.discussionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if discussion.AuthorID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.discussionRepo.Delete(id)
}
