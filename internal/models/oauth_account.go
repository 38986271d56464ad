package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supported OAuth providers.
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
	ProviderGitHub   = "github"
	ProviderDiscord  = "discord"
)

// OAuthAccount links a user to an external identity. A user may hold several
// accounts, but (provider, provider_user_id) identifies exactly one user.
// Accounts share their user's lifecycle and are not soft-deleted on their own.
type OAuthAccount struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Provider       string    `gorm:"size:50;not null;uniqueIndex:idx_provider_identity" json:"provider"`
	ProviderUserID string    `gorm:"size:255;not null;uniqueIndex:idx_provider_identity" json:"provider_user_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (a *OAuthAccount) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = uuid.NewV7()
	}
	return
}
