package server

import (
	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/post/:postId/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	like, err := s.likeService.LikePost(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// LikeComment handles POST /api/comment/:commentId/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	commentID, err := paramUUID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	like, err := s.likeService.LikeComment(c.UserContext(), currentUserID(c), commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// GetLike handles GET /api/like/:likeId
func (s *Server) GetLike(c *fiber.Ctx) error {
	likeID, err := paramUUID(c, "likeId")
	if err != nil {
		return respondError(c, err)
	}

	like, err := s.likeService.GetLike(c.UserContext(), likeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(like)
}

// GetPostLikes handles GET /api/post/:postId/likes
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	likes, err := s.likeService.GetLikesForPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(likes)
}

// GetCommentLikes handles GET /api/comment/:commentId/likes
func (s *Server) GetCommentLikes(c *fiber.Ctx) error {
	commentID, err := paramUUID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	likes, err := s.likeService.GetLikesForComment(c.UserContext(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(likes)
}

// CountPostLikes handles GET /api/post/:postId/likes/count
func (s *Server) CountPostLikes(c *fiber.Ctx) error {
	postID, err := paramUUID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	count, err := s.likeService.CountLikesOfPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// CountCommentLikes handles GET /api/comment/:commentId/likes/count
func (s *Server) CountCommentLikes(c *fiber.Ctx) error {
	commentID, err := paramUUID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	count, err := s.likeService.CountLikesOfComment(c.UserContext(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// RemoveLike handles DELETE /api/like/:likeId
func (s *Server) RemoveLike(c *fiber.Ctx) error {
	likeID, err := paramUUID(c, "likeId")
	if err != nil {
		return respondError(c, err)
	}

	like, err := s.likeService.RemoveLike(c.UserContext(), likeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(like)
}
