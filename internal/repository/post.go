package repository

import (
	"context"
	"errors"

	"devbits/internal/cache"
	"devbits/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error)
	Update(ctx context.Context, id uuid.UUID, patch models.PostPatch) (*models.Post, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*models.Post, error)
	HardDelete(ctx context.Context, id uuid.UUID) (*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		logStoreError(ctx, "Post", "Create", post.ID, err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewEntityNotFoundError("Post", id)
			}
			logStoreError(ctx, "Post", "GetByID", id, err)
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&posts).Error
	if err != nil {
		logStoreError(ctx, "Post", "ListByUser", userID, err)
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, id uuid.UUID, patch models.PostPatch) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewEntityNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}

		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Content != nil {
			updates["content"] = *patch.Content
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			return models.NewInternalError(err)
		}
		return tx.Where("id = ?", id).First(&post).Error
	})
	if err != nil {
		logStoreError(ctx, "Post", "Update", id, err)
		return nil, err
	}
	cache.InvalidatePost(ctx, id)
	return &post, nil
}

func (r *postRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	post, err := softDeleteRow[models.Post](ctx, r.db, "Post", id)
	if err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidatePostLikes(ctx, id)
	return post, nil
}

func (r *postRepository) HardDelete(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	post, err := hardDeleteRow[models.Post](ctx, r.db, "Post", id)
	if err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidatePostLikes(ctx, id)
	return post, nil
}
