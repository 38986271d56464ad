package repository

import (
	"context"
	"errors"

	"devbits/internal/cache"
	"devbits/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations. A like row
// targets exactly one of a post or a comment; the repository stores whatever
// shape models.NewPostLike/NewCommentLike produced and never re-checks the XOR.
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Like, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Like, error)
	ListByComment(ctx context.Context, commentID uuid.UUID) ([]*models.Like, error)
	CountForPost(ctx context.Context, postID uuid.UUID) (int64, error)
	CountForComment(ctx context.Context, commentID uuid.UUID) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*models.Like, error)
	HardDelete(ctx context.Context, id uuid.UUID) (*models.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		logStoreError(ctx, "Like", "Create", like.ID, err)
		return models.NewInternalError(err)
	}
	r.invalidateCounts(ctx, like)
	return nil
}

func (r *likeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewEntityNotFoundError("Like", id)
		}
		logStoreError(ctx, "Like", "GetByID", id, err)
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Like, error) {
	var likes []*models.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		logStoreError(ctx, "Like", "ListByPost", postID, err)
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) ListByComment(ctx context.Context, commentID uuid.UUID) ([]*models.Like, error) {
	var likes []*models.Like
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		logStoreError(ctx, "Like", "ListByComment", commentID, err)
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	err := cache.Aside(ctx, cache.PostLikesKey(postID), &count, cache.LikeCountTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.Like{}).
			Where("post_id = ?", postID).
			Count(&count).Error; err != nil {
			logStoreError(ctx, "Like", "CountForPost", postID, err)
			return models.NewInternalError(err)
		}
		return nil
	})
	return count, err
}

func (r *likeRepository) CountForComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	var count int64
	err := cache.Aside(ctx, cache.CommentLikesKey(commentID), &count, cache.LikeCountTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.Like{}).
			Where("comment_id = ?", commentID).
			Count(&count).Error; err != nil {
			logStoreError(ctx, "Like", "CountForComment", commentID, err)
			return models.NewInternalError(err)
		}
		return nil
	})
	return count, err
}

func (r *likeRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	like, err := softDeleteRow[models.Like](ctx, r.db, "Like", id)
	if err != nil {
		return nil, err
	}
	r.invalidateCounts(ctx, like)
	return like, nil
}

func (r *likeRepository) HardDelete(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	like, err := hardDeleteRow[models.Like](ctx, r.db, "Like", id)
	if err != nil {
		return nil, err
	}
	r.invalidateCounts(ctx, like)
	return like, nil
}

func (r *likeRepository) invalidateCounts(ctx context.Context, like *models.Like) {
	if like.PostID != nil {
		cache.InvalidatePostLikes(ctx, *like.PostID)
	}
	if like.CommentID != nil {
		cache.InvalidateCommentLikes(ctx, *like.CommentID)
	}
}
