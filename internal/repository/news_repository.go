package repository

import (
	"codaverse/internal/models"

	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(news *models.News) error
	Update(news *models.News) error
	Delete(id int64) error
	FindByID(id int64) (*models.News, error)
	FindAll() ([]models.News, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

func (r *newsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

func (r *newsRepository) Delete(id int64) error {
	result := r.db.Delete(&models.News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *newsRepository) FindByID(id int64) (*models.News, error) {
	var news models.News
	if err := r.db.First(&news, id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// FindAll returns news items newest first.
func (r *newsRepository) FindAll() ([]models.News, error) {
	var items []models.News
	if err := r.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
