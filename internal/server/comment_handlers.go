package server

import (
	"devbits/internal/models"
	"devbits/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateComment handles POST /api/comment
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		PostID          uuid.UUID  `json:"post_id"`
		ParentCommentID *uuid.UUID `json:"parent_comment_id"`
		Content         string     `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.PostID == uuid.Nil {
		return respondError(c, models.NewValidationError("post_id is required"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:          currentUserID(c),
		PostID:          req.PostID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComment handles GET /api/comment/:commentId
func (s *Server) GetComment(c *fiber.Ctx) error {
	commentID, err := paramUUID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	comment, err := s.commentService.GetComment(c.UserContext(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// GetPostComments handles GET /api/post/:postId/comments
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	comments, err := s.commentService.GetCommentsByPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// GetUserComments handles GET /api/user/:userId/comments
func (s *Server) GetUserComments(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	comments, err := s.commentService.GetCommentsByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// UpdateComment handles PUT /api/comment/:commentId
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := paramUUID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comment/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := paramUUID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	comment, err := s.commentService.DeleteComment(c.UserContext(), currentUserID(c), commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}
