package server

import (
	"devbits/internal/models"
	"devbits/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/post/:postId
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// GetUserPosts handles GET /api/user/:userId/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	posts, err := s.postService.GetPostsByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// UpdatePost handles PUT /api/post/:postId
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:  currentUserID(c),
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/post/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.DeletePost(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}
