package server

import (
	"devbits/internal/models"
	"devbits/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /api/user/:userId
func (s *Server) GetUser(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.userService.GetUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /api/user (the caller's own profile)
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	var req struct {
		Email          *string `json:"email"`
		Username       *string `json:"username"`
		ProfilePicture *string `json:"profile_picture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(c.UserContext(), service.UpdateUserInput{
		UserID:         currentUserID(c),
		Email:          req.Email,
		Username:       req.Username,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /api/user (the caller's own account)
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	user, err := s.userService.DeleteUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
