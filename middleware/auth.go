package middleware

import (
	"net/http"
	"strings"
	"time"

	"savorybook/config"
	"savorybook/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

func parseBearer(c *gin.Context) (*Claims, bool, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false, nil
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, true, err
	}
	return claims, true, nil
}

func setClaims(c *gin.Context, claims *Claims) {
	c.Set("userID", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", string(claims.Role))
}

// AuthRequired validates the JWT and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, present, err := parseBearer(c)
		if !present {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		if err != nil || claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// AuthOptional injects claims when a token is sent. The legacy routes stay
// open, so a missing token passes; a bad one is still rejected.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, present, err := parseBearer(c)
		if present && (err != nil || claims == nil) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		if claims != nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.UserRole) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) string {
	return c.GetString("userID")
}

// GetEmail extracts caller email from context
func GetEmail(c *gin.Context) string {
	return c.GetString("email")
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) (models.UserRole, bool) {
	val, ok := c.Get("role")
	if !ok {
		return "", false
	}
	s, _ := val.(string)
	return models.UserRole(s), s != ""
}
