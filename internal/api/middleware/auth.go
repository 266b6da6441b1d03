// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"donorlink-api-server/internal/auth"
	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrincipalKey is the gin context key under which Authenticate stores the
// resolved *models.User.
const PrincipalKey = "principal"

// Authenticate verifies the bearer token and resolves the embedded user
// against the store, so a token for a deleted account is rejected. The
// resolved principal is bound to the request context for downstream handlers.
func Authenticate(tokens *auth.TokenManager, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token format"})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token payload"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error during authentication"})
			return
		}

		c.Set(PrincipalKey, user)
		c.Next()
	}
}

// Authorize is a middleware factory gating a route group to the given roles.
// Checks are pure equality; admin does not implicitly satisfy other roles.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, exists := c.Get(PrincipalKey)
		if !exists {
			// Authenticate must run first.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Principal not found in context"})
			return
		}

		user, ok := principal.(*models.User)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Principal has an invalid type"})
			return
		}

		for _, role := range allowedRoles {
			if role == user.Role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "You do not have permission to access this resource"})
	}
}
