package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/pkg/auth"
)

// AuthService is what the gate needs from the auth service: token
// verification and user resolution.
type AuthService interface {
	ValidateToken(token string) (*auth.Claims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type AuthMiddleware struct {
	authSvc AuthService
}

func NewAuthMiddleware(authSvc AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Authenticate verifies the bearer token and attaches the resolved user to
// the request. Every failure is terminal: no retries, no refresh.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("Not authorized, no token"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("Not authorized, no token"))
			return
		}

		claims, err := m.authSvc.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("Not authorized, token failed"))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("Not authorized, token failed"))
			return
		}

		user, err := m.authSvc.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("User not found."))
			return
		}

		c.Set(handler.ContextUserKey, user)
		c.Set(handler.ContextUserIDKey, user.ID.String())
		c.Set(handler.ContextUserTypeKey, user.UserType)
		c.Next()
	}
}
