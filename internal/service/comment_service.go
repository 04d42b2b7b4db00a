package service

import (
	"errors"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
)

type CommentService interface {
	List() ([]dto.CommentResponse, error)
	Get(id int64) (*dto.CommentResponse, error)
	Create(author *models.User, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Update(actor *models.User, id int64, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(actor *models.User, id int64) error
}

type commentService struct {
	commentRepo    repository.CommentRepository
	discussionRepo repository.DiscussionRepository
}

func NewCommentService(commentRepo repository.CommentRepository, discussionRepo repository.DiscussionRepository) CommentService {
	return &commentService{
		commentRepo:    commentRepo,
		discussionRepo: discussionRepo,
	}
}

func (s *commentService) List() ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}

func (s *commentService) Get(id int64) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

func (s *commentService) Create(author *models.User, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.discussionRepo.FindByID(req.DiscussionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		DiscussionID: req.DiscussionID,
		AuthorID:     author.ID,
		Content:      req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.FindByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(created), nil
}

func (s *commentService) Update(actor *models.User, id int64, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if comment.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

func (s *commentService) Delete(actor *models.User, id int64) error {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if comment.AuthorID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.commentRepo.Delete(id)
}
