package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

// TokenConfig controls how sign-in tokens are minted and checked.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// Claims is the payload of a sign-in token.
type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (tc TokenConfig) issue(u User, now time.Time) (string, error) {
	claims := &Claims{
		UserID: u.ID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.Secret)
}

// RequireToken rejects requests without a valid bearer token and stores the
// parsed token in c.Locals("user").
func RequireToken(tc TokenConfig) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: tc.Secret,
		Claims:     &Claims{},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}

// IDFromToken returns the signed-in user's id. Shared with the address handler.
func IDFromToken(c *fiber.Ctx) (int, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.UserID <= 0 {
		return 0, fiber.ErrUnauthorized
	}
	return claims.UserID, nil
}
