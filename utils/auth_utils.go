package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const (
	UserTokenTTL  = 7 * 24 * time.Hour
	AdminTokenTTL = 5 * time.Hour
)

type UserClaims struct {
	UserID uint `json:"user_id"`
}

type AdminClaims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type contextKey string

const (
	UserContextKey  contextKey = "user"
	AdminContextKey contextKey = "admin"
)

// GetUser returns the claims the auth middleware attached, or nil on an
// unauthenticated request.
func GetUser(c *gin.Context) *UserClaims {
	v, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	claims, ok := v.(*UserClaims)
	if !ok {
		return nil
	}
	return claims
}

func GetAdmin(c *gin.Context) *AdminClaims {
	v, exists := c.Get(string(AdminContextKey))
	if !exists {
		return nil
	}
	claims, ok := v.(*AdminClaims)
	if !ok {
		return nil
	}
	return claims
}

// GenerateUserToken signs a 7-day bearer token for a regular user.
func GenerateUserToken(userID uint, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(UserTokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// GenerateAdminToken signs a 5-hour bearer token carrying the admin role
// claim the admin middleware checks for.
func GenerateAdminToken(adminID uint, email, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": adminID,
		"email":    email,
		"role":     "admin",
		"exp":      time.Now().Add(AdminTokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}
