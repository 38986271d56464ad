package service

import (
	"context"

	"devbits/internal/dto"
	"devbits/internal/models"
	"devbits/internal/repository"

	"github.com/google/uuid"
)

// LikeService handles likes on posts and comments.
type LikeService struct {
	likeRepo    repository.LikeRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, postRepo: postRepo, commentRepo: commentRepo}
}

// LikePost records the user's like on a live post.
func (s *LikeService) LikePost(ctx context.Context, userID, postID uuid.UUID) (*dto.LikePost, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	like := models.NewPostLike(userID, postID)
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return &dto.LikePost{LikeID: like.ID, UserID: like.UserID, PostID: postID}, nil
}

// LikeComment records the user's like on a live comment.
func (s *LikeService) LikeComment(ctx context.Context, userID, commentID uuid.UUID) (*dto.LikeComment, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}

	like := models.NewCommentLike(userID, commentID)
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return &dto.LikeComment{LikeID: like.ID, UserID: like.UserID, CommentID: commentID}, nil
}

// GetLike resolves a like to its target-specific shape. The result is either
// a *dto.LikeComment or a *dto.LikePost depending on what the like targets.
func (s *LikeService) GetLike(ctx context.Context, likeID uuid.UUID) (any, error) {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return nil, err
	}
	if like.OnComment() {
		return &dto.LikeComment{LikeID: like.ID, UserID: like.UserID, CommentID: *like.CommentID}, nil
	}
	return &dto.LikePost{LikeID: like.ID, UserID: like.UserID, PostID: *like.PostID}, nil
}

// GetLikesForPost returns the identifiers of all live likes on a post.
func (s *LikeService) GetLikesForPost(ctx context.Context, postID uuid.UUID) ([]*dto.LikeID, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LikeID, 0, len(likes))
	for _, l := range likes {
		out = append(out, &dto.LikeID{LikeID: l.ID})
	}
	return out, nil
}

// GetLikesForComment returns the identifiers of all live likes on a comment.
func (s *LikeService) GetLikesForComment(ctx context.Context, commentID uuid.UUID) ([]*dto.LikeID, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.ListByComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LikeID, 0, len(likes))
	for _, l := range likes {
		out = append(out, &dto.LikeID{LikeID: l.ID})
	}
	return out, nil
}

// CountLikesOfPost returns the number of live likes on a post.
func (s *LikeService) CountLikesOfPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountForPost(ctx, postID)
}

// CountLikesOfComment returns the number of live likes on a comment.
func (s *LikeService) CountLikesOfComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountForComment(ctx, commentID)
}

// RemoveLike soft-deletes a like. The delete goes straight to the store so
// that removing an already removed like still reports the conflict instead of
// a not-found from a pre-read.
func (s *LikeService) RemoveLike(ctx context.Context, likeID uuid.UUID) (*dto.LikeID, error) {
	like, err := s.likeRepo.SoftDelete(ctx, likeID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeID{LikeID: like.ID}, nil
}
