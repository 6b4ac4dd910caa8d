package middleware

import (
	"github.com/AbhiraajV/credate/internal/config"
	"github.com/AbhiraajV/credate/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error": dto.ErrorBody{
					Code:    dto.CodeUnauthorized,
					Message: "invalid or expired token",
				},
			})
		},
	})
}
