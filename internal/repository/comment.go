package repository

import (
	"context"
	"errors"

	"devbits/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Comment, error)
	Update(ctx context.Context, id uuid.UUID, patch models.CommentPatch) (*models.Comment, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	HardDelete(ctx context.Context, id uuid.UUID) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		logStoreError(ctx, "Comment", "Create", comment.ID, err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewEntityNotFoundError("Comment", id)
		}
		logStoreError(ctx, "Comment", "GetByID", id, err)
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		logStoreError(ctx, "Comment", "ListByPost", postID, err)
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		logStoreError(ctx, "Comment", "ListByUser", userID, err)
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, id uuid.UUID, patch models.CommentPatch) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewEntityNotFoundError("Comment", id)
			}
			return models.NewInternalError(err)
		}

		updates := map[string]interface{}{}
		if patch.Content != nil {
			updates["content"] = *patch.Content
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&comment).Updates(updates).Error; err != nil {
			return models.NewInternalError(err)
		}
		return tx.Where("id = ?", id).First(&comment).Error
	})
	if err != nil {
		logStoreError(ctx, "Comment", "Update", id, err)
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return softDeleteRow[models.Comment](ctx, r.db, "Comment", id)
}

func (r *commentRepository) HardDelete(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return hardDeleteRow[models.Comment](ctx, r.db, "Comment", id)
}
