package service

import (
	"context"

	"devbits/internal/dto"
	"devbits/internal/models"
	"devbits/internal/repository"

	"github.com/google/uuid"
)

const maxCommentLen = 10000

// CommentService handles comment CRUD and threading.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput carries a new comment. ParentCommentID is set for replies.
type CreateCommentInput struct {
	UserID          uuid.UUID
	PostID          uuid.UUID
	ParentCommentID *uuid.UUID
	Content         string
}

// UpdateCommentInput carries an owner's changes to a comment.
type UpdateCommentInput struct {
	UserID    uuid.UUID
	CommentID uuid.UUID
	Content   *string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// CreateComment validates and stores a comment on a live post. Replies must
// name a live parent comment belonging to the same post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*dto.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	if in.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:          in.PostID,
		UserID:          in.UserID,
		ParentCommentID: in.ParentCommentID,
		Content:         in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return dto.FromComment(comment), nil
}

// GetComment returns a single comment.
func (s *CommentService) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return dto.FromComment(comment), nil
}

// GetCommentsByPost returns the live comments of a post in creation order.
// Replies whose parent was since deleted still appear; the client decides how
// to render orphaned branches.
func (s *CommentService) GetCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*dto.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.FromComment(c))
	}
	return out, nil
}

// GetCommentsByUser returns all live comments authored by the user.
func (s *CommentService) GetCommentsByUser(ctx context.Context, userID uuid.UUID) ([]*dto.Comment, error) {
	comments, err := s.commentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.FromComment(c))
	}
	return out, nil
}

// UpdateComment applies the patch after verifying ownership.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*dto.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}
	if in.Content != nil && *in.Content == "" {
		return nil, models.NewValidationError("Content cannot be empty")
	}

	updated, err := s.commentRepo.Update(ctx, in.CommentID, models.CommentPatch{Content: in.Content})
	if err != nil {
		return nil, err
	}
	return dto.FromComment(updated), nil
}

// DeleteComment soft-deletes the comment after verifying ownership. Replies
// to the comment are left in place.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) (*dto.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only delete your own comments")
	}

	deleted, err := s.commentRepo.SoftDelete(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return dto.FromComment(deleted), nil
}
