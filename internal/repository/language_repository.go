package repository

import (
	"codaverse/internal/models"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	Create(language *models.ProgrammingLanguage) error
	Update(language *models.ProgrammingLanguage) error
	Delete(id int64) error
	FindByID(id int64) (*models.ProgrammingLanguage, error)
	FindAll() ([]models.ProgrammingLanguage, error)
}

type languageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) Create(language *models.ProgrammingLanguage) error {
	return r.db.Create(language).Error
}

func (r *languageRepository) Update(language *models.ProgrammingLanguage) error {
	return r.db.Save(language).Error
}

func (r *languageRepository) Delete(id int64) error {
	result := r.db.Delete(&models.ProgrammingLanguage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *languageRepository) FindByID(id int64) (*models.ProgrammingLanguage, error) {
	var language models.ProgrammingLanguage
	if err := r.db.First(&language, id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindAll() ([]models.ProgrammingLanguage, error) {
	var languages []models.ProgrammingLanguage
	if err := r.db.Order("name ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}
