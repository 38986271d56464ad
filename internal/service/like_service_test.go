package service

import (
	"context"
	"testing"

	"devbits/internal/dto"
	"devbits/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_LikePost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	postID := uuid.New()

	t.Run("records the like on a live post", func(t *testing.T) {
		t.Parallel()
		likeID := uuid.New()
		likeRepo := noopLikeRepo()
		likeRepo.createFn = func(_ context.Context, l *models.Like) error {
			l.ID = likeID
			require.NotNil(t, l.PostID)
			assert.Nil(t, l.CommentID)
			return nil
		}
		svc := NewLikeService(likeRepo, noopPostRepo(), noopCommentRepo())

		like, err := svc.LikePost(ctx, userID, postID)
		require.NoError(t, err)
		assert.Equal(t, likeID, like.LikeID)
		assert.Equal(t, postID, like.PostID)
		assert.Equal(t, userID, like.UserID)
	})

	t.Run("missing post fails before any write", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return nil, models.NewEntityNotFoundError("Post", id)
		}
		likeRepo := noopLikeRepo()
		likeRepo.createFn = func(_ context.Context, _ *models.Like) error {
			t.Fatal("Create must not run when the target is missing")
			return nil
		}
		svc := NewLikeService(likeRepo, postRepo, noopCommentRepo())

		_, err := svc.LikePost(ctx, userID, postID)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func TestLikeService_LikeComment(t *testing.T) {
	t.Parallel()

	likeRepo := noopLikeRepo()
	likeRepo.createFn = func(_ context.Context, l *models.Like) error {
		l.ID = uuid.New()
		require.NotNil(t, l.CommentID)
		assert.Nil(t, l.PostID)
		return nil
	}
	svc := NewLikeService(likeRepo, noopPostRepo(), noopCommentRepo())

	commentID := uuid.New()
	like, err := svc.LikeComment(context.Background(), uuid.New(), commentID)
	require.NoError(t, err)
	assert.Equal(t, commentID, like.CommentID)
}

func TestLikeService_GetLike_ResolvesTarget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("post like resolves to the post shape", func(t *testing.T) {
		t.Parallel()
		postID := uuid.New()
		likeRepo := noopLikeRepo()
		likeRepo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Like, error) {
			return &models.Like{ID: id, UserID: userID, PostID: &postID}, nil
		}
		svc := NewLikeService(likeRepo, noopPostRepo(), noopCommentRepo())

		got, err := svc.GetLike(ctx, uuid.New())
		require.NoError(t, err)
		like, ok := got.(*dto.LikePost)
		require.True(t, ok, "expected *dto.LikePost, got %T", got)
		assert.Equal(t, postID, like.PostID)
	})

	t.Run("comment like resolves to the comment shape", func(t *testing.T) {
		t.Parallel()
		commentID := uuid.New()
		likeRepo := noopLikeRepo()
		likeRepo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Like, error) {
			return &models.Like{ID: id, UserID: userID, CommentID: &commentID}, nil
		}
		svc := NewLikeService(likeRepo, noopPostRepo(), noopCommentRepo())

		got, err := svc.GetLike(ctx, uuid.New())
		require.NoError(t, err)
		like, ok := got.(*dto.LikeComment)
		require.True(t, ok, "expected *dto.LikeComment, got %T", got)
		assert.Equal(t, commentID, like.CommentID)
	})
}

func TestLikeService_GetLikesForPost(t *testing.T) {
	t.Parallel()

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	postID := uuid.New()
	likeRepo := noopLikeRepo()
	likeRepo.listByPostFn = func(_ context.Context, _ uuid.UUID) ([]*models.Like, error) {
		return []*models.Like{
			{ID: ids[0], PostID: &postID},
			{ID: ids[1], PostID: &postID},
		}, nil
	}
	svc := NewLikeService(likeRepo, noopPostRepo(), noopCommentRepo())

	likes, err := svc.GetLikesForPost(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, ids[0], likes[0].LikeID)
	assert.Equal(t, ids[1], likes[1].LikeID)
}

func TestLikeService_RemoveLike_PassesConflictThrough(t *testing.T) {
	t.Parallel()

	likeID := uuid.New()
	likeRepo := noopLikeRepo()
	likeRepo.softDeleteFn = func(_ context.Context, id uuid.UUID) (*models.Like, error) {
		return nil, models.NewEntityAlreadyDeletedError("Like", id)
	}
	svc := NewLikeService(likeRepo, noopPostRepo(), noopCommentRepo())

	_, err := svc.RemoveLike(context.Background(), likeID)
	assertAppErrorCode(t, err, models.CodeAlreadyDeleted)
}

func TestLikeService_CountLikes(t *testing.T) {
	t.Parallel()

	likeRepo := noopLikeRepo()
	likeRepo.countForPostFn = func(_ context.Context, _ uuid.UUID) (int64, error) { return 7, nil }
	likeRepo.countForCommentFn = func(_ context.Context, _ uuid.UUID) (int64, error) { return 3, nil }
	svc := NewLikeService(likeRepo, noopPostRepo(), noopCommentRepo())
	ctx := context.Background()

	postCount, err := svc.CountLikesOfPost(ctx, uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 7, postCount)

	commentCount, err := svc.CountLikesOfComment(ctx, uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 3, commentCount)
}
