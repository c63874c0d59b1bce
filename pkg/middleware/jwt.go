package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sporthub/sporthub-api/pkg/response"
)

const (
	// ContextKeyUserID is the context key for the authenticated user id
	ContextKeyUserID = "user_id"
	// ContextKeyUserEmail is the context key for the authenticated user email
	ContextKeyUserEmail = "user_email"
	// ContextKeyUserRole is the context key for the authenticated user role
	ContextKeyUserRole = "user_role"
)

// JWTConfig holds JWT middleware configuration
type JWTConfig struct {
	Secret    string
	SkipPaths []string
}

// JWTMiddleware validates the Bearer token and stores the claims in the request context
func JWTMiddleware(cfg *JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, path := range cfg.SkipPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Authorization header is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Authorization header must be Bearer token"))
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid token claims"))
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Token missing user id"))
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyUserEmail, email)
		c.Set(ContextKeyUserRole, role)

		c.Next()
	}
}

// OptionalJWTMiddleware stores the claims in the request context when a
// valid Bearer token is present, and lets the request through anonymously
// otherwise.
func OptionalJWTMiddleware(cfg *JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, _ := claims["user_id"].(string); userID != "" {
				email, _ := claims["email"].(string)
				role, _ := claims["role"].(string)
				c.Set(ContextKeyUserID, userID)
				c.Set(ContextKeyUserEmail, email)
				c.Set(ContextKeyUserRole, role)
			}
		}

		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated user has one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.Forbidden("Insufficient permissions"))
	}
}

// GetUserID returns the authenticated user id from the context
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// GetUserEmail returns the authenticated user email from the context
func GetUserEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserEmail)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// GetUserRole returns the authenticated user role from the context
func GetUserRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
