package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/reelboard/reelboard/internal/pkg/jwt"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/internal/utils"
)

// Context keys set by the authentication middleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware creates the authentication check: it requires a bearer
// token, and on success attaches the decoded identity and role to the
// request context. It must run before any role check.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			// Set the user ID and role in the context
			c.Set(ContextUserID, userID)
			c.Set(ContextUserRole, fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// OptionalJWTAuthMiddleware attaches identity when a valid bearer token is
// present and lets the request through anonymously otherwise. Used on public
// endpoints whose response widens for authenticated callers.
func OptionalJWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return next(c)
			}

			if userIDStr, ok := (*claims)["user_id"]; ok {
				if userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr)); err == nil {
					c.Set(ContextUserID, userID)
				}
			}
			if role, ok := (*claims)["role"]; ok {
				c.Set(ContextUserRole, fmt.Sprintf("%v", role))
			}

			return next(c)
		}
	}
}

// RequireRole creates the role check: the attached role must equal the
// required value. The role comes from the token, so it reflects the role
// at issuance time, not the current stored role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			attached, ok := c.Get(ContextUserRole).(string)
			if !ok {
				return utils.ForbiddenResponse(c, "Role not found in token")
			}
			if attached != role {
				return utils.ForbiddenResponse(c, "You do not have permission to access this resource")
			}
			return next(c)
		}
	}
}

// UserID extracts the authenticated user ID from the echo context.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok
}

// UserRole extracts the authenticated role from the echo context.
func UserRole(c echo.Context) string {
	role, _ := c.Get(ContextUserRole).(string)
	return role
}
