package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/melodix-app/melodix-backend/internal/infrastructure/jwt"
)

// AuthMiddleWare requires a valid Bearer token and stores the actor's user
// ID in the request context under "userID".
func AuthMiddleWare(jwtManager *jwt.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is missing or malformed"})
			return
		}
		claims, err := jwtManager.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID())
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid Bearer token is present but
// lets anonymous requests through. Used by endpoints whose results depend on
// who is asking, like search over private playlists.
func OptionalAuth(jwtManager *jwt.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c); ok {
			if claims, err := jwtManager.VerifyToken(tokenStr); err == nil {
				c.Set("userID", claims.UserID())
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
