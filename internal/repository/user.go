package repository

import (
	"context"
	"errors"

	"devbits/internal/cache"
	"devbits/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users and their OAuth accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// CreateWithAccount inserts the user together with its first OAuth account
	// as one transactional graph.
	CreateWithAccount(ctx context.Context, user *models.User, account *models.OAuthAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByProvider resolves a user through the (provider, providerUserID)
	// compound key. Returns (nil, nil) when no live user holds that identity;
	// the find-or-create flow treats absence as normal.
	GetByProvider(ctx context.Context, provider, providerUserID string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*models.User, error)
	HardDelete(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		logStoreError(ctx, "User", "Create", user.ID, err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) CreateWithAccount(ctx context.Context, user *models.User, account *models.OAuthAccount) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		account.UserID = user.ID
		return tx.Create(account).Error
	})
	if err != nil {
		logStoreError(ctx, "User", "CreateWithAccount", user.ID, err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewEntityNotFoundError("User", id)
			}
			logStoreError(ctx, "User", "GetByID", id, err)
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByProvider(ctx context.Context, provider, providerUserID string) (*models.User, error) {
	var account models.OAuthAccount
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logStoreError(ctx, "User", "GetByProvider", uuid.Nil, err)
		return nil, models.NewInternalError(err)
	}

	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", account.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The account's user is soft-deleted; the identity no longer resolves.
			return nil, nil
		}
		logStoreError(ctx, "User", "GetByProvider", account.UserID, err)
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewEntityNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}

		updates := map[string]interface{}{}
		if patch.Email != nil {
			updates["email"] = *patch.Email
		}
		if patch.Username != nil {
			updates["username"] = *patch.Username
		}
		if patch.ProfilePicture != nil {
			updates["profile_picture"] = *patch.ProfilePicture
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return models.NewInternalError(err)
		}
		return tx.Where("id = ?", id).First(&user).Error
	})
	if err != nil {
		logStoreError(ctx, "User", "Update", id, err)
		return nil, err
	}
	cache.InvalidateUser(ctx, id)
	return &user, nil
}

func (r *userRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := softDeleteRow[models.User](ctx, r.db, "User", id)
	if err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, id)
	return user, nil
}

func (r *userRepository) HardDelete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := hardDeleteRow[models.User](ctx, r.db, "User", id)
	if err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, id)
	return user, nil
}
