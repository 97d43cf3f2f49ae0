package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"folio-be/internal/entities"
	"folio-be/internal/repository"
	"folio-be/internal/token"
)

const (
	userKey   = "current_user"
	userIDKey = "user_id"
)

// AuthMiddleware is the hard gate in front of every protected route. It
// extracts the bearer token, validates it, loads the user behind it, and
// attaches the identity to the request context. Any failure aborts with 401
// before a handler runs.
func AuthMiddleware(tokens *token.Service, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "authorization required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, "authorization required")
			return
		}

		userID, err := tokens.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		// A valid token for a vanished account is still unauthenticated.
		user, err := userRepo.FindByID(userID)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		user.PasswordHash = ""
		c.Set(userKey, user)
		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

// CurrentUserID returns the authenticated user's id.
func CurrentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}
