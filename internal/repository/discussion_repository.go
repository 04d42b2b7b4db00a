package repository

import (
	"codaverse/internal/models"

	"gorm.io/gorm"
)

type DiscussionRepository interface {
	Create(discussion *models.Discussion) error
	Update(discussion *models.Discussion) error
	Delete(id int64) error
	FindByID(id int64) (*models.Discussion, error)
	FindAll(categorySlug string, page, pageSize int) ([]models.Discussion, int64, error)
	IncrementViews(id int64) error
}

type discussionRepository struct {
	db *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Create(discussion *models.Discussion) error {
	return r.db.Create(discussion).Error
}

func (r *discussionRepository) Update(discussion *models.Discussion) error {
	return r.db.Omit("Author", "Category", "Comments").Save(discussion).Error
}

func (r *discussionRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Discussion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *discussionRepository) FindByID(id int64) (*models.Discussion, error) {
	var discussion models.Discussion
	err := r.db.
		Preload("Author").
		Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&discussion, id).Error
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

// FindAll returns one page of discussions, most recent first, optionally
// restricted to a category slug.
func (r *discussionRepository) FindAll(categorySlug string, page, pageSize int) ([]models.Discussion, int64, error) {
	var discussions []models.Discussion
	var total int64

	query := r.db.Model(&models.Discussion{})
	if categorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = discussions.category_id").
			Where("categories.slug = ?", categorySlug)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Author").
		Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Order("discussions.created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&discussions).Error
	if err != nil {
		return nil, 0, err
	}

	return discussions, total, nil
}

// IncrementViews bumps the counter in place, no read-modify-write race.
func (r *discussionRepository) IncrementViews(id int64) error {
	return r.db.Model(&models.Discussion{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
