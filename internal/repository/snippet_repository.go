package repository

import (
	"codaverse/internal/models"

	"gorm.io/gorm"
)

type SnippetRepository interface {
	// Create persists the snippet together with its nested code rows in one
	// transaction; a failure leaves no orphaned parent.
	Create(snippet *models.CodeSnippet) error
	Update(snippet *models.CodeSnippet) error
	Delete(id int64) error
	FindByID(id int64) (*models.CodeSnippet, error)
	FindAll(sort string) ([]models.CodeSnippet, error)

	CountReactions(snippetID int64) (likes, dislikes int64, err error)
	UserReaction(snippetID int64, userID string) (*string, error)
	ToggleLike(snippetID int64, user *models.User) (*string, error)
	ToggleDislike(snippetID int64, user *models.User) (*string, error)
}

type snippetRepository struct {
	db *gorm.DB
}

func NewSnippetRepository(db *gorm.DB) SnippetRepository {
	return &snippetRepository{db: db}
}

func (r *snippetRepository) Create(snippet *models.CodeSnippet) error {
	// gorm creates the Codes association rows inside the same transaction
	return r.db.Create(snippet).Error
}

func (r *snippetRepository) Update(snippet *models.CodeSnippet) error {
	return r.db.Omit("Codes", "Likes", "Dislikes", "Author").Save(snippet).Error
}

func (r *snippetRepository) Delete(id int64) error {
	result := r.db.Select("Codes", "Likes", "Dislikes").Delete(&models.CodeSnippet{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *snippetRepository) FindByID(id int64) (*models.CodeSnippet, error) {
	var snippet models.CodeSnippet
	err := r.db.
		Preload("Author").
		Preload("Codes", func(db *gorm.DB) *gorm.DB {
			return db.Order("codes.created_at ASC")
		}).
		Preload("Codes.Language").
		First(&snippet, id).Error
	if err != nil {
		return nil, err
	}
	return &snippet, nil
}

// FindAll returns all snippets in the requested order. most_liked sorts at
// the storage layer by like cardinality, ties broken by recency.
func (r *snippetRepository) FindAll(sort string) ([]models.CodeSnippet, error) {
	var snippets []models.CodeSnippet

	query := r.db.
		Preload("Author").
		Preload("Codes", func(db *gorm.DB) *gorm.DB {
			return db.Order("codes.created_at ASC")
		}).
		Preload("Codes.Language")

	switch sort {
	case "oldest":
		query = query.Order("created_at ASC")
	case "most_liked":
		query = query.
			Select("code_snippets.*, COUNT(snippet_likes.user_id) AS like_count").
			Joins("LEFT JOIN snippet_likes ON snippet_likes.code_snippet_id = code_snippets.id").
			Group("code_snippets.id").
			Order("like_count DESC, code_snippets.created_at DESC")
	default: // newest
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&snippets).Error; err != nil {
		return nil, err
	}
	return snippets, nil
}

func (r *snippetRepository) CountReactions(snippetID int64) (int64, int64, error) {
	var likes, dislikes int64
	if err := r.db.Table("snippet_likes").Where("code_snippet_id = ?", snippetID).Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Table("snippet_dislikes").Where("code_snippet_id = ?", snippetID).Count(&dislikes).Error; err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

// UserReaction is an existence check on the two join tables, never a scan of
// the full collections.
func (r *snippetRepository) UserReaction(snippetID int64, userID string) (*string, error) {
	member, err := r.isMember(r.db, "snippet_likes", snippetID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		reaction := "like"
		return &reaction, nil
	}

	member, err = r.isMember(r.db, "snippet_dislikes", snippetID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		reaction := "dislike"
		return &reaction, nil
	}
	return nil, nil
}

// ToggleLike applies the like toggle for one user: the opposite reaction is
// always cleared first, then the like is flipped. The whole sequence runs in
// one transaction so concurrent calls cannot leave both edges set.
func (r *snippetRepository) ToggleLike(snippetID int64, user *models.User) (*string, error) {
	return r.toggle(snippetID, user, "snippet_likes", "snippet_dislikes", "Likes", "Dislikes", "like")
}

// ToggleDislike is the mirror of ToggleLike.
func (r *snippetRepository) ToggleDislike(snippetID int64, user *models.User) (*string, error) {
	return r.toggle(snippetID, user, "snippet_dislikes", "snippet_likes", "Dislikes", "Likes", "dislike")
}

func (r *snippetRepository) toggle(snippetID int64, user *models.User, table, oppositeTable, assoc, oppositeAssoc, name string) (*string, error) {
	var reaction *string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		snippet := &models.CodeSnippet{ID: snippetID}

		opposite, err := r.isMember(tx, oppositeTable, snippetID, user.ID)
		if err != nil {
			return err
		}
		if opposite {
			if err := tx.Model(snippet).Association(oppositeAssoc).Delete(user); err != nil {
				return err
			}
		}

		current, err := r.isMember(tx, table, snippetID, user.ID)
		if err != nil {
			return err
		}
		if current {
			return tx.Model(snippet).Association(assoc).Delete(user)
		}

		if err := tx.Model(snippet).Association(assoc).Append(user); err != nil {
			return err
		}
		reaction = &name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reaction, nil
}

func (r *snippetRepository) isMember(tx *gorm.DB, table string, snippetID int64, userID string) (bool, error) {
	var count int64
	err := tx.Table(table).
		Where("code_snippet_id = ? AND user_id = ?", snippetID, userID).
		Count(&count).Error
	return count > 0, err
}
