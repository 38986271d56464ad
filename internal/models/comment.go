package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment represents a comment on a post. ParentCommentID, when set, points at
// the comment this one replies to; replies live on the same post as the parent.
type Comment struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PostID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"post_id"`
	Post            *Post          `gorm:"foreignKey:PostID" json:"post,omitempty"`
	ParentCommentID *uuid.UUID     `gorm:"type:uuid" json:"parent_comment_id,omitempty"`
	ParentComment   *Comment       `gorm:"foreignKey:ParentCommentID" json:"parent_comment,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Likes []Like `gorm:"foreignKey:CommentID" json:"likes,omitempty"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

// Deleted reports whether the row is soft-deleted.
func (c *Comment) Deleted() bool { return c.DeletedAt.Valid }

// CommentPatch carries the updatable comment fields.
type CommentPatch struct {
	Content *string
}
