package repository

import (
	"strings"

	"codaverse/internal/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	// CreateWithTags persists the blog and associates each named tag,
	// creating missing tags lazily, all in one transaction. Tag names are
	// matched lower-cased.
	CreateWithTags(blog *models.Blog, tagNames []string) error
	Update(blog *models.Blog) error
	Delete(id int64) error
	FindByID(id int64) (*models.Blog, error)
	FindAll(tagSlug string) ([]models.Blog, error)

	CountLikes(blogID int64) (int64, error)
	HasLiked(blogID int64, userID string) (bool, error)
	ToggleLike(blogID int64, user *models.User) (bool, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) CreateWithTags(blog *models.Blog, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(blog).Error; err != nil {
			return err
		}

		for _, name := range tagNames {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}

			var tag models.Tag
			if err := tx.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
				return err
			}
			if err := tx.Model(blog).Association("Tags").Append(&tag); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *blogRepository) Update(blog *models.Blog) error {
	return r.db.Omit("Tags", "Likes", "Author").Save(blog).Error
}

func (r *blogRepository) Delete(id int64) error {
	result := r.db.Select("Likes").Delete(&models.Blog{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) FindByID(id int64) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.
		Preload("Author").
		Preload("Tags").
		First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindAll returns blogs newest first, optionally filtered by tag slug. The
// tag join can only match a blog once per tag, and the filter is a single
// slug, so rows stay unique; DISTINCT guards against future multi-join
// filters all the same.
func (r *blogRepository) FindAll(tagSlug string) ([]models.Blog, error) {
	var blogs []models.Blog

	query := r.db.
		Preload("Author").
		Preload("Tags")

	if tagSlug != "" {
		query = query.
			Distinct("blogs.*").
			Joins("JOIN blog_tags ON blog_tags.blog_id = blogs.id").
			Joins("JOIN tags ON tags.id = blog_tags.tag_id").
			Where("tags.slug = ?", tagSlug)
	}

	if err := query.Order("blogs.created_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) CountLikes(blogID int64) (int64, error) {
	var count int64
	err := r.db.Table("blog_likes").Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

// HasLiked is an existence check on the join table.
func (r *blogRepository) HasLiked(blogID int64, userID string) (bool, error) {
	var count int64
	err := r.db.Table("blog_likes").
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Count(&count).Error
	return count > 0, err
}

// ToggleLike flips the user's like membership inside one transaction and
// reports the new state.
func (r *blogRepository) ToggleLike(blogID int64, user *models.User) (bool, error) {
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		blog := &models.Blog{ID: blogID}

		var count int64
		if err := tx.Table("blog_likes").
			Where("blog_id = ? AND user_id = ?", blogID, user.ID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return tx.Model(blog).Association("Likes").Delete(user)
		}

		if err := tx.Model(blog).Association("Likes").Append(user); err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}
