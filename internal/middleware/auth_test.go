package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devbits/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-auth-middleware"

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	InitMiddleware(&config.Config{JWTSecret: testSecret})

	app := fiber.New()
	app.Get("/protected", AuthRequired, func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uuid.UUID)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func validClaims(userID uuid.UUID) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func TestAuthRequired(t *testing.T) {
	app := setupAuthApp(t)
	userID := uuid.New()

	t.Run("no credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("session cookie accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{
			Name:  SessionCookieName,
			Value: signToken(t, testSecret, validClaims(userID)),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("bearer header accepted as fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(userID)))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		claims := validClaims(userID)
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{
			Name:  SessionCookieName,
			Value: signToken(t, testSecret, claims),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong signing key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{
			Name:  SessionCookieName,
			Value: signToken(t, "some-other-secret", validClaims(userID)),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("non-uuid subject rejected", func(t *testing.T) {
		claims := validClaims(userID)
		claims["sub"] = "12345"
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{
			Name:  SessionCookieName,
			Value: signToken(t, testSecret, claims),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
