package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"petboard/internal/domain/account"
	"petboard/internal/pkg/cookie"
	"petboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAccountIDKey = "account_id"
	ctxRoleKey      = "account_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		token = cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		accountID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAccountIDKey, accountID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"account_id": accountID.String(),
			"role":       role.String(),
		})
		c.Next()
	}
}

// RequireRole gates a route group to one role. Owners and providers are
// flat peers, so exact match is the rule; there is no hierarchy.
func (m *AuthMiddleware) RequireRole(required account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if actor.Role != required {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetActor(c *gin.Context) (account.Actor, bool) {
	rawID, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return account.Actor{}, false
	}
	id, ok := rawID.(uuid.UUID)
	if !ok {
		return account.Actor{}, false
	}

	rawRole, exists := c.Get(ctxRoleKey)
	if !exists {
		return account.Actor{}, false
	}
	role, ok := rawRole.(account.Role)
	if !ok {
		return account.Actor{}, false
	}

	return account.Actor{ID: id, Role: role}, true
}
