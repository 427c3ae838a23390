package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/unirides/unirides/internal/pkg/constants"
	jwtpkg "github.com/unirides/unirides/internal/pkg/jwt"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := claims["user_id"]
			if !ok || fmt.Sprintf("%v", userID) == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			userType, ok := claims["user_type"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_type claim")
			}

			c.Set(constants.ContextUserID, fmt.Sprintf("%v", userID))
			c.Set(constants.ContextUserType, fmt.Sprintf("%v", userType))

			return next(c)
		}
	}
}

// CurrentUserID returns the authenticated user id set by JWTAuthMiddleware
func CurrentUserID(c echo.Context) string {
	if id, ok := c.Get(constants.ContextUserID).(string); ok {
		return id
	}
	return ""
}
