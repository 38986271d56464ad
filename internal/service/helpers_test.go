package service

import (
	"context"
	"errors"
	"testing"

	"devbits/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Function-field stubs for the repository interfaces. Each test overrides only
// the calls it cares about.

type userRepoStub struct {
	createFn            func(context.Context, *models.User) error
	createWithAccountFn func(context.Context, *models.User, *models.OAuthAccount) error
	getByIDFn           func(context.Context, uuid.UUID) (*models.User, error)
	getByProviderFn     func(context.Context, string, string) (*models.User, error)
	updateFn            func(context.Context, uuid.UUID, models.UserPatch) (*models.User, error)
	softDeleteFn        func(context.Context, uuid.UUID) (*models.User, error)
	hardDeleteFn        func(context.Context, uuid.UUID) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error {
	return s.createFn(ctx, u)
}
func (s *userRepoStub) CreateWithAccount(ctx context.Context, u *models.User, a *models.OAuthAccount) error {
	return s.createWithAccountFn(ctx, u, a)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByProvider(ctx context.Context, provider, providerUserID string) (*models.User, error) {
	return s.getByProviderFn(ctx, provider, providerUserID)
}
func (s *userRepoStub) Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	return s.updateFn(ctx, id, patch)
}
func (s *userRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.softDeleteFn(ctx, id)
}
func (s *userRepoStub) HardDelete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.hardDeleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		createWithAccountFn: func(_ context.Context, _ *models.User, _ *models.OAuthAccount) error {
			return nil
		},
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByProviderFn: func(_ context.Context, _, _ string) (*models.User, error) { return nil, nil },
		updateFn: func(_ context.Context, id uuid.UUID, _ models.UserPatch) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		softDeleteFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		hardDeleteFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
}

type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	getByIDFn    func(context.Context, uuid.UUID) (*models.Post, error)
	listByUserFn func(context.Context, uuid.UUID) ([]*models.Post, error)
	updateFn     func(context.Context, uuid.UUID, models.PostPatch) (*models.Post, error)
	softDeleteFn func(context.Context, uuid.UUID) (*models.Post, error)
	hardDeleteFn func(context.Context, uuid.UUID) (*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error {
	return s.createFn(ctx, p)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *postRepoStub) Update(ctx context.Context, id uuid.UUID, patch models.PostPatch) (*models.Post, error) {
	return s.updateFn(ctx, id, patch)
}
func (s *postRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.softDeleteFn(ctx, id)
}
func (s *postRepoStub) HardDelete(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.hardDeleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		listByUserFn: func(_ context.Context, _ uuid.UUID) ([]*models.Post, error) { return nil, nil },
		updateFn: func(_ context.Context, id uuid.UUID, _ models.PostPatch) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		softDeleteFn: func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		hardDeleteFn: func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uuid.UUID) (*models.Comment, error)
	listByPostFn func(context.Context, uuid.UUID) ([]*models.Comment, error)
	listByUserFn func(context.Context, uuid.UUID) ([]*models.Comment, error)
	updateFn     func(context.Context, uuid.UUID, models.CommentPatch) (*models.Comment, error)
	softDeleteFn func(context.Context, uuid.UUID) (*models.Comment, error)
	hardDeleteFn func(context.Context, uuid.UUID) (*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Comment, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *commentRepoStub) Update(ctx context.Context, id uuid.UUID, patch models.CommentPatch) (*models.Comment, error) {
	return s.updateFn(ctx, id, patch)
}
func (s *commentRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.softDeleteFn(ctx, id)
}
func (s *commentRepoStub) HardDelete(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.hardDeleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(_ context.Context, _ uuid.UUID) ([]*models.Comment, error) { return nil, nil },
		listByUserFn: func(_ context.Context, _ uuid.UUID) ([]*models.Comment, error) { return nil, nil },
		updateFn: func(_ context.Context, id uuid.UUID, _ models.CommentPatch) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		softDeleteFn: func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		hardDeleteFn: func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
	}
}

type likeRepoStub struct {
	createFn          func(context.Context, *models.Like) error
	getByIDFn         func(context.Context, uuid.UUID) (*models.Like, error)
	listByPostFn      func(context.Context, uuid.UUID) ([]*models.Like, error)
	listByCommentFn   func(context.Context, uuid.UUID) ([]*models.Like, error)
	countForPostFn    func(context.Context, uuid.UUID) (int64, error)
	countForCommentFn func(context.Context, uuid.UUID) (int64, error)
	softDeleteFn      func(context.Context, uuid.UUID) (*models.Like, error)
	hardDeleteFn      func(context.Context, uuid.UUID) (*models.Like, error)
}

func (s *likeRepoStub) Create(ctx context.Context, l *models.Like) error {
	return s.createFn(ctx, l)
}
func (s *likeRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	return s.getByIDFn(ctx, id)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.Like, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *likeRepoStub) ListByComment(ctx context.Context, commentID uuid.UUID) ([]*models.Like, error) {
	return s.listByCommentFn(ctx, commentID)
}
func (s *likeRepoStub) CountForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	return s.countForPostFn(ctx, postID)
}
func (s *likeRepoStub) CountForComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	return s.countForCommentFn(ctx, commentID)
}
func (s *likeRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	return s.softDeleteFn(ctx, id)
}
func (s *likeRepoStub) HardDelete(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	return s.hardDeleteFn(ctx, id)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn: func(_ context.Context, _ *models.Like) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Like, error) {
			return &models.Like{ID: id}, nil
		},
		listByPostFn:      func(_ context.Context, _ uuid.UUID) ([]*models.Like, error) { return nil, nil },
		listByCommentFn:   func(_ context.Context, _ uuid.UUID) ([]*models.Like, error) { return nil, nil },
		countForPostFn:    func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
		countForCommentFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
		softDeleteFn: func(_ context.Context, id uuid.UUID) (*models.Like, error) {
			return &models.Like{ID: id}, nil
		},
		hardDeleteFn: func(_ context.Context, id uuid.UUID) (*models.Like, error) {
			return &models.Like{ID: id}, nil
		},
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}
