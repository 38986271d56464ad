package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like represents a like on either a post or a comment. Exactly one of PostID
// and CommentID is set; the schema deliberately carries no check constraint for
// this, so construction goes through NewPostLike/NewCommentLike and reads
// discriminate on whichever foreign key is non-nil.
type Like struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PostID    *uuid.UUID     `gorm:"type:uuid;index" json:"post_id,omitempty"`
	CommentID *uuid.UUID     `gorm:"type:uuid;index" json:"comment_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID, err = uuid.NewV7()
	}
	return
}

// NewPostLike builds a like targeting a post.
func NewPostLike(userID, postID uuid.UUID) *Like {
	return &Like{UserID: userID, PostID: &postID}
}

// NewCommentLike builds a like targeting a comment.
func NewCommentLike(userID, commentID uuid.UUID) *Like {
	return &Like{UserID: userID, CommentID: &commentID}
}

// Deleted reports whether the row is soft-deleted.
func (l *Like) Deleted() bool { return l.DeletedAt.Valid }

// OnComment reports whether the like targets a comment. The comment side wins
// the discrimination; PostID and CommentID are mutually exclusive by
// construction so no real tie exists.
func (l *Like) OnComment() bool {
	return l.CommentID != nil
}
