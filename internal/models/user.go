// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account created through an OAuth provider. Every profile
// field is optional because providers differ in what they share.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email          *string        `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Username       *string        `gorm:"size:100" json:"username,omitempty"`
	ProfilePicture *string        `gorm:"type:text" json:"profile_picture,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Accounts []OAuthAccount `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
	Posts    []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments []Comment      `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Likes    []Like         `gorm:"foreignKey:UserID" json:"likes,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID, err = uuid.NewV7()
	}
	return
}

// Deleted reports whether the row is soft-deleted.
func (u *User) Deleted() bool { return u.DeletedAt.Valid }

// UserPatch carries the updatable user fields. Nil means "leave unchanged".
type UserPatch struct {
	Email          *string
	Username       *string
	ProfilePicture *string
}
