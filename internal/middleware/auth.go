package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"mealhub/internal/models"
	"mealhub/internal/repository"
	"mealhub/internal/token"
)

// ClaimsKey is where RequireAuth stores the verified claims in the gin
// context for downstream gates and handlers.
const ClaimsKey = "claims"

// RequireAuth verifies the bearer credential before the handler runs.
func RequireAuth(tokens *token.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		// A header without a second field still goes through verification
		// (and fails there) rather than being special-cased.
		var tokenString string
		if fields := strings.Fields(authHeader); len(fields) > 1 {
			tokenString = fields[1]
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			logger.Debug("Rejected bearer token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin permits only callers whose stored role is admin. It must be
// installed after RequireAuth: the email is read from the verified claims,
// never from the request path or query. The lookup is fresh on every
// request so a role change takes effect immediately.
func RequireAdmin(users repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := ClaimsEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil && err != repository.ErrNotFound {
			logger.Error("Role lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		// An unknown email is a non-admin caller, not a server error.
		if user == nil || !models.ParseRole(user.Role).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}

// ClaimsEmail returns the email claim attached by RequireAuth.
func ClaimsEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return "", false
	}
	claims, ok := v.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	return token.Email(claims)
}
