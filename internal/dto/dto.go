// Package dto defines the response shapes crossing the service boundary.
// Store rows never leak past the service layer; every service response is one
// of these types.
package dto

import (
	"devbits/internal/models"

	"github.com/google/uuid"
)

// UserSimple identifies a user.
type UserSimple struct {
	UserID uuid.UUID `json:"user_id"`
}

// UserDetail carries the full user profile.
type UserDetail struct {
	UserID         uuid.UUID `json:"user_id"`
	Email          *string   `json:"email,omitempty"`
	Username       *string   `json:"username,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
}

// PostSimple carries identifiers and minimal display fields of a post.
type PostSimple struct {
	PostID uuid.UUID `json:"post_id"`
	UserID uuid.UUID `json:"user_id"`
	Title  string    `json:"title"`
}

// PostWithContent carries the full post.
type PostWithContent struct {
	PostID  uuid.UUID `json:"post_id"`
	UserID  uuid.UUID `json:"user_id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

// Comment carries a full comment including its optional parent reference.
type Comment struct {
	CommentID       uuid.UUID  `json:"comment_id"`
	PostID          uuid.UUID  `json:"post_id"`
	UserID          uuid.UUID  `json:"user_id"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id,omitempty"`
	Content         string     `json:"content"`
}

// LikeID identifies a like.
type LikeID struct {
	LikeID uuid.UUID `json:"like_id"`
}

// LikePost is the response shape for a like targeting a post.
type LikePost struct {
	LikeID uuid.UUID `json:"like_id"`
	UserID uuid.UUID `json:"user_id"`
	PostID uuid.UUID `json:"post_id"`
}

// LikeComment is the response shape for a like targeting a comment.
type LikeComment struct {
	LikeID    uuid.UUID `json:"like_id"`
	UserID    uuid.UUID `json:"user_id"`
	CommentID uuid.UUID `json:"comment_id"`
}

// FromUser maps a user row to its detail DTO.
func FromUser(u *models.User) *UserDetail {
	return &UserDetail{
		UserID:         u.ID,
		Email:          u.Email,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}

// FromPostSimple maps a post row to its simple DTO.
func FromPostSimple(p *models.Post) *PostSimple {
	return &PostSimple{
		PostID: p.ID,
		UserID: p.UserID,
		Title:  p.Title,
	}
}

// FromPost maps a post row to its full DTO.
func FromPost(p *models.Post) *PostWithContent {
	return &PostWithContent{
		PostID:  p.ID,
		UserID:  p.UserID,
		Title:   p.Title,
		Content: p.Content,
	}
}

// FromComment maps a comment row to its DTO.
func FromComment(c *models.Comment) *Comment {
	return &Comment{
		CommentID:       c.ID,
		PostID:          c.PostID,
		UserID:          c.UserID,
		ParentCommentID: c.ParentCommentID,
		Content:         c.Content,
	}
}
