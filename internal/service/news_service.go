package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
)

type NewsService interface {
	List() ([]dto.NewsResponse, error)
	Get(id int64) (*dto.NewsResponse, error)
	Create(req *dto.NewsRequest) (*dto.NewsResponse, error)
	Update(id int64, req *dto.NewsRequest) (*dto.NewsResponse, error)
	Delete(id int64) error
}

type newsService struct {
	newsRepo repository.NewsRepository
}

func NewNewsService(newsRepo repository.NewsRepository) NewsService {
	return &newsService{newsRepo: newsRepo}
}

func (s *newsService) List() ([]dto.NewsResponse, error) {
	items, err := s.newsRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *dto.FromModelToNewsResponse(&items[i]))
	}
	return responses, nil
}

func (s *newsService) Get(id int64) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToNewsResponse(news), nil
}

func (s *newsService) Create(req *dto.NewsRequest) (*dto.NewsResponse, error) {
	news := &models.News{
		Title: req.Title,
		Body:  req.Body,
	}
	if req.CreatedAt != nil {
		news.CreatedAt = *req.CreatedAt
	} else {
		news.CreatedAt = time.Now()
	}

	if err := s.newsRepo.Create(news); err != nil {
		return nil, err
	}
	return dto.FromModelToNewsResponse(news), nil
}

func (s *newsService) Update(id int64, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	news.Title = req.Title
	news.Body = req.Body
	if req.CreatedAt != nil {
		news.CreatedAt = *req.CreatedAt
	}

	if err := s.newsRepo.Update(news); err != nil {
		return nil, err
	}
	return dto.FromModelToNewsResponse(news), nil
}

func (s *newsService) Delete(id int64) error {
	if err := s.newsRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
