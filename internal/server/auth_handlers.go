package server

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"time"

	"devbits/internal/middleware"
	"devbits/internal/models"
	"devbits/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	stateCookieName = "oauth_state"
	sessionTTL      = time.Hour
)

// googleUserInfo is the subset of the userinfo response the login flow needs.
type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleLogin handles GET /auth/google. It sends the browser to Google's
// consent screen with a random state bound to a short-lived cookie.
func (s *Server) GoogleLogin(c *fiber.Ctx) error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: "Lax",
	})

	return c.Redirect(s.oauthConfig.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles GET /auth/google/callback. It exchanges the code,
// resolves the Google identity to a user and starts a cookie session.
func (s *Server) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookieName) {
		return respondError(c, models.NewUnauthorizedError("Invalid OAuth state"))
	}
	c.ClearCookie(stateCookieName)

	code := c.Query("code")
	if code == "" {
		return respondError(c, models.NewValidationError("Missing authorization code"))
	}

	ctx := c.UserContext()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "oauth code exchange failed", "error", err)
		return respondError(c, models.NewUnauthorizedError("OAuth code exchange failed"))
	}

	resp, err := s.oauthConfig.Client(ctx, token).Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	user, err := s.userService.RegisterUser(ctx, service.RegisterUserInput{
		Email:          optional(info.Email),
		Name:           optional(info.Name),
		ProfilePicture: optional(info.Picture),
		Provider:       models.ProviderGoogle,
		ProviderUserID: info.ID,
	})
	if err != nil {
		return respondError(c, err)
	}

	signed, err := s.issueSessionToken(user.UserID.String())
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    signed,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: "Lax",
	})

	return c.JSON(user)
}

func (s *Server) issueSessionToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecret))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
