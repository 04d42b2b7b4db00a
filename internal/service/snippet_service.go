package service

import (
	"errors"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
)

type SnippetService interface {
	// List returns snippets in the requested order; viewer may be nil, in
	// which case user_reaction is absent everywhere.
	List(viewer *models.User, sort string) ([]dto.SnippetResponse, error)
	Get(viewer *models.User, id int64) (*dto.SnippetResponse, error)
	Create(author *models.User, req *dto.CreateSnippetRequest) (*dto.SnippetResponse, error)
	Update(actor *models.User, id int64, req *dto.UpdateSnippetRequest) (*dto.SnippetResponse, error)
	Delete(actor *models.User, id int64) error
	Like(viewer *models.User, id int64) (*dto.ReactionResponse, error)
	Dislike(viewer *models.User, id int64) (*dto.ReactionResponse, error)
}

type snippetService struct {
	snippetRepo  repository.SnippetRepository
	languageRepo repository.LanguageRepository
}

func NewSnippetService(snippetRepo repository.SnippetRepository, languageRepo repository.LanguageRepository) SnippetService {
	return &snippetService{
		snippetRepo:  snippetRepo,
		languageRepo: languageRepo,
	}
}

func (s *snippetService) List(viewer *models.User, sort string) ([]dto.SnippetResponse, error) {
	snippets, err := s.snippetRepo.FindAll(sort)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SnippetResponse, 0, len(snippets))
	for i := range snippets {
		resp, err := s.toResponse(viewer, &snippets[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *snippetService) Get(viewer *models.User, id int64) (*dto.SnippetResponse, error) {
	snippet, err := s.snippetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.toResponse(viewer, snippet)
}

func (s *snippetService) Create(author *models.User, req *dto.CreateSnippetRequest) (*dto.SnippetResponse, error) {
	codes := make([]models.Code, 0, len(req.Codes))
	for _, entry := range req.Codes {
		if _, err := s.languageRepo.FindByID(entry.LanguageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		codes = append(codes, models.Code{
			LanguageID: entry.LanguageID,
			Code:       entry.Code,
		})
	}

	snippet := &models.CodeSnippet{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    author.ID,
		Codes:       codes,
	}
	if err := s.snippetRepo.Create(snippet); err != nil {
		return nil, err
	}

	// Reload for the nested language objects.
	created, err := s.snippetRepo.FindByID(snippet.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(author, created)
}

func (s *snippetService) Update(actor *models.User, id int64, req *dto.UpdateSnippetRequest) (*dto.SnippetResponse, error) {
	snippet, err := s.snippetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if snippet.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		snippet.Title = *req.Title
	}
	if req.Description != nil {
		snippet.Description = *req.Description
	}
	if err := s.snippetRepo.Update(snippet); err != nil {
		return nil, err
	}
	return s.toResponse(actor, snippet)
}

func (s *snippetService) Delete(actor *models.User, id int64) error {
	snippet, err := s.snippetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if snippet.AuthorID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.snippetRepo.Delete(id)
}

func (s *snippetService) Like(viewer *models.User, id int64) (*dto.ReactionResponse, error) {
	return s.react(viewer, id, s.snippetRepo.ToggleLike)
}

func (s *snippetService) Dislike(viewer *models.User, id int64) (*dto.ReactionResponse, error) {
	return s.react(viewer, id, s.snippetRepo.ToggleDislike)
}

func (s *snippetService) react(viewer *models.User, id int64, toggle func(int64, *models.User) (*string, error)) (*dto.ReactionResponse, error) {
	if _, err := s.snippetRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reaction, err := toggle(id, viewer)
	if err != nil {
		return nil, err
	}

	likes, dislikes, err := s.snippetRepo.CountReactions(id)
	if err != nil {
		return nil, err
	}

	return &dto.ReactionResponse{
		LikesCount:    likes,
		DislikesCount: dislikes,
		UserReaction:  reaction,
	}, nil
}

func (s *snippetService) toResponse(viewer *models.User, snippet *models.CodeSnippet) (*dto.SnippetResponse, error) {
	likes, dislikes, err := s.snippetRepo.CountReactions(snippet.ID)
	if err != nil {
		return nil, err
	}

	var reaction *string
	if viewer != nil {
		reaction, err = s.snippetRepo.UserReaction(snippet.ID, viewer.ID)
		if err != nil {
			return nil, err
		}
	}

	return dto.FromModelToSnippetResponse(snippet, likes, dislikes, reaction), nil
}
