// Package service contains the application's business logic, orchestrating
// repositories and mapping store rows onto response DTOs.
package service

import (
	"context"

	"devbits/internal/dto"
	"devbits/internal/models"
	"devbits/internal/repository"

	"github.com/google/uuid"
)

// UserService handles user registration and profile operations.
type UserService struct {
	userRepo repository.UserRepository
}

// RegisterUserInput carries the identity claims obtained from an OAuth provider.
type RegisterUserInput struct {
	Email          *string
	Name           *string
	ProfilePicture *string
	Provider       string
	ProviderUserID string
}

// UpdateUserInput carries a user's own profile changes.
type UpdateUserInput struct {
	UserID         uuid.UUID
	Email          *string
	Username       *string
	ProfilePicture *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

var validProviders = map[string]bool{
	models.ProviderGoogle:   true,
	models.ProviderFacebook: true,
	models.ProviderGitHub:   true,
	models.ProviderDiscord:  true,
}

// RegisterUser resolves an external identity to a user, creating the user
// together with its first OAuth account when the identity is unknown.
// Idempotent: repeated calls with the same (provider, providerUserID) return
// the existing user.
func (s *UserService) RegisterUser(ctx context.Context, in RegisterUserInput) (*dto.UserDetail, error) {
	if !validProviders[in.Provider] {
		return nil, models.NewValidationError("Unknown OAuth provider")
	}
	if in.ProviderUserID == "" {
		return nil, models.NewValidationError("Provider user ID is required")
	}

	user, err := s.userRepo.GetByProvider(ctx, in.Provider, in.ProviderUserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			Email:          in.Email,
			Username:       in.Name,
			ProfilePicture: in.ProfilePicture,
		}
		account := &models.OAuthAccount{
			Provider:       in.Provider,
			ProviderUserID: in.ProviderUserID,
		}
		if err := s.userRepo.CreateWithAccount(ctx, user, account); err != nil {
			return nil, err
		}
	}

	return dto.FromUser(user), nil
}

// GetUser returns the user's profile.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// UpdateUser applies the caller's profile changes.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*dto.UserDetail, error) {
	user, err := s.userRepo.Update(ctx, in.UserID, models.UserPatch{
		Email:          in.Email,
		Username:       in.Username,
		ProfilePicture: in.ProfilePicture,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// DeleteUser soft-deletes the caller's own account.
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) (*dto.UserSimple, error) {
	user, err := s.userRepo.SoftDelete(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserSimple{UserID: user.ID}, nil
}
