package service

import (
	"errors"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
)

type LanguageService interface {
	List() ([]dto.LanguageResponse, error)
	Get(id int64) (*dto.LanguageResponse, error)
	Create(req *dto.LanguageRequest) (*dto.LanguageResponse, error)
	Update(id int64, req *dto.LanguageRequest) (*dto.LanguageResponse, error)
	Delete(id int64) error
}

type languageService struct {
	languageRepo repository.LanguageRepository
}

func NewLanguageService(languageRepo repository.LanguageRepository) LanguageService {
	return &languageService{languageRepo: languageRepo}
}

func (s *languageService) List() ([]dto.LanguageResponse, error) {
	languages, err := s.languageRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LanguageResponse, 0, len(languages))
	for i := range languages {
		responses = append(responses, *dto.FromModelToLanguageResponse(&languages[i]))
	}
	return responses, nil
}

func (s *languageService) Get(id int64) (*dto.LanguageResponse, error) {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToLanguageResponse(language), nil
}

func (s *languageService) Create(req *dto.LanguageRequest) (*dto.LanguageResponse, error) {
	language := &models.ProgrammingLanguage{
		Name: req.Name,
		Slug: req.Slug, // derived by the model hook when empty
		Code: req.Code,
	}
	if err := s.languageRepo.Create(language); err != nil {
		return nil, err
	}
	return dto.FromModelToLanguageResponse(language), nil
}

// Update changes name and short code; the slug stays as set at creation.
func (s *languageService) Update(id int64, req *dto.LanguageRequest) (*dto.LanguageResponse, error) {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	language.Name = req.Name
	language.Code = req.Code
	if err := s.languageRepo.Update(language); err != nil {
		return nil, err
	}
	return dto.FromModelToLanguageResponse(language), nil
}

func (s *languageService) Delete(id int64) error {
	if err := s.languageRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
