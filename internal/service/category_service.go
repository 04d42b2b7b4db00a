package service

import (
	"errors"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
)

type CategoryService interface {
	List() ([]dto.CategoryResponse, error)
	Get(id int64) (*dto.CategoryResponse, error)
	Create(req *dto.CategoryRequest) (*dto.CategoryResponse, error)
	Update(id int64, req *dto.CategoryRequest) (*dto.CategoryResponse, error)
	Delete(id int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List() ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *dto.FromModelToCategoryResponse(&categories[i]))
	}
	return responses, nil
}

func (s *categoryService) Get(id int64) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToCategoryResponse(category), nil
}

func (s *categoryService) Create(req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug, // derived by the model hook when empty
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return dto.FromModelToCategoryResponse(category), nil
}

// Update changes name and description. The slug is set once at creation and
// never recomputed, so it is deliberately not touched here.
func (s *categoryService) Update(id int64, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return dto.FromModelToCategoryResponse(category), nil
}

func (s *categoryService) Delete(id int64) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
