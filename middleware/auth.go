package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Abdouxone/KFP/models"
)

// PrincipalContextKey is the gin context key holding the authenticated
// principal.
const PrincipalContextKey = "principal"

// Principal is the authenticated caller as asserted by the identity
// provider: an opaque user id plus a role claim.
type Principal struct {
	UserID string
	Role   models.Role
}

// AuthMiddleware verifies the identity provider's bearer token and stores
// the resulting principal on the context. The token is HMAC-signed with the
// shared secret; its subject is the provider's user id and "role" carries
// the role claim.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		roleClaim, _ := claims["role"].(string)

		c.Set(PrincipalContextKey, Principal{
			UserID: sub,
			Role:   models.ParseRole(roleClaim),
		})
		c.Next()
	}
}

// GetPrincipal returns the principal stored by AuthMiddleware.
func GetPrincipal(c *gin.Context) (Principal, error) {
	if val, ok := c.Get(PrincipalContextKey); ok {
		if p, ok := val.(Principal); ok && p.UserID != "" {
			return p, nil
		}
	}
	return Principal{}, errors.New("principal not found in context")
}

// RequireSeller rejects principals whose role cannot manage stores and
// products.
func RequireSeller() gin.HandlerFunc {
	return requireCapability(models.Role.CanSell, "Seller")
}

// RequireAdmin rejects principals whose role cannot manage the platform
// taxonomy.
func RequireAdmin() gin.HandlerFunc {
	return requireCapability(models.Role.CanAdminister, "Admin")
}

func requireCapability(allowed func(models.Role) bool, label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := GetPrincipal(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
			return
		}
		if !allowed(p.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Unauthorized Access: " + label + " Privileges Required for Entry.",
			})
			return
		}
		c.Next()
	}
}
