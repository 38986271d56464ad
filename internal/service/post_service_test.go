package service

import (
	"context"
	"strings"
	"testing"

	"devbits/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: userID, Content: "body"})
		assertValidationError(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: userID, Title: "title"})
		assertValidationError(t, err)
	})

	t.Run("title too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{
			UserID:  userID,
			Title:   strings.Repeat("t", 256),
			Content: "body",
		})
		assertValidationError(t, err)
	})
}

func TestPostService_CreatePost_Success(t *testing.T) {
	t.Parallel()

	postID := uuid.New()
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = postID
		return nil
	}

	svc := NewPostService(repo)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  uuid.New(),
		Title:   "Hello",
		Content: "World",
	})
	require.NoError(t, err)
	assert.Equal(t, postID, post.PostID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
}

func TestPostService_UpdatePost_Ownership(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return &models.Post{ID: id, UserID: owner}, nil
	}
	svc := NewPostService(repo)
	ctx := context.Background()

	t.Run("non-owner cannot update", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdatePost(ctx, UpdatePostInput{
			UserID: uuid.New(),
			PostID: uuid.New(),
			Title:  strPtr("new"),
		})
		assertUnauthorizedError(t, err)
	})

	t.Run("owner updates", func(t *testing.T) {
		t.Parallel()
		post, err := svc.UpdatePost(ctx, UpdatePostInput{
			UserID: owner,
			PostID: uuid.New(),
			Title:  strPtr("new"),
		})
		require.NoError(t, err)
		assert.NotNil(t, post)
	})

	t.Run("empty title patch rejected", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdatePost(ctx, UpdatePostInput{
			UserID: owner,
			PostID: uuid.New(),
			Title:  strPtr(""),
		})
		assertValidationError(t, err)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	ctx := context.Background()

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return &models.Post{ID: id, UserID: owner}, nil
		}
		repo.softDeleteFn = func(_ context.Context, _ uuid.UUID) (*models.Post, error) {
			t.Fatal("SoftDelete must not run for a non-owner")
			return nil, nil
		}
		svc := NewPostService(repo)
		_, err := svc.DeletePost(ctx, uuid.New(), uuid.New())
		assertUnauthorizedError(t, err)
	})

	t.Run("missing post propagates not found", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return nil, models.NewEntityNotFoundError("Post", id)
		}
		svc := NewPostService(repo)
		_, err := svc.DeletePost(ctx, owner, uuid.New())
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func strPtr(s string) *string { return &s }
