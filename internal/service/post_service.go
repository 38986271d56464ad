package service

import (
	"context"

	"devbits/internal/dto"
	"devbits/internal/models"
	"devbits/internal/repository"

	"github.com/google/uuid"
)

const (
	maxTitleLen   = 255
	maxContentLen = 50000
)

// PostService handles post CRUD operations.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries a new post authored by UserID.
type CreatePostInput struct {
	UserID  uuid.UUID
	Title   string
	Content string
}

// UpdatePostInput carries an owner's changes to a post.
type UpdatePostInput struct {
	UserID  uuid.UUID
	PostID  uuid.UUID
	Title   *string
	Content *string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*dto.PostWithContent, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return dto.FromPost(post), nil
}

// GetPost returns the full post.
func (s *PostService) GetPost(ctx context.Context, postID uuid.UUID) (*dto.PostWithContent, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return dto.FromPost(post), nil
}

// GetPostsByUser returns all live posts authored by the user.
func (s *PostService) GetPostsByUser(ctx context.Context, userID uuid.UUID) ([]*dto.PostSimple, error) {
	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PostSimple, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.FromPostSimple(p))
	}
	return out, nil
}

// UpdatePost applies the patch after verifying ownership.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*dto.PostWithContent, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}
	if in.Title != nil && *in.Title == "" {
		return nil, models.NewValidationError("Title cannot be empty")
	}
	if in.Content != nil && *in.Content == "" {
		return nil, models.NewValidationError("Content cannot be empty")
	}

	updated, err := s.postRepo.Update(ctx, in.PostID, models.PostPatch{
		Title:   in.Title,
		Content: in.Content,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromPost(updated), nil
}

// DeletePost soft-deletes the post after verifying ownership.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uuid.UUID) (*dto.PostSimple, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only delete your own posts")
	}

	deleted, err := s.postRepo.SoftDelete(ctx, postID)
	if err != nil {
		return nil, err
	}
	return dto.FromPostSimple(deleted), nil
}
