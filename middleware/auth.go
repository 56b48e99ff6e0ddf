package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"camisetas-api/apperrors"
	"camisetas-api/config"
	"camisetas-api/models"
	"camisetas-api/rolegate"
	"camisetas-api/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session JWT for a given user. The jti
// lets the session store revoke it on logout.
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecretBytes())
}

// ActionClaims carry single-purpose tokens mailed to users (email
// verification, password reset)
type ActionClaims struct {
	UserID  uint   `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

const (
	PurposeVerifyEmail   = "verify_email"
	PurposeResetPassword = "reset_password"
)

// GenerateActionToken creates a short-lived token for an emailed action link
func GenerateActionToken(user *models.User, purpose string, ttl time.Duration) (string, error) {
	claims := ActionClaims{
		UserID:  user.ID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecretBytes())
}

// ParseActionToken validates an action token and checks its purpose
func ParseActionToken(tokenStr, purpose string) (*ActionClaims, error) {
	claims := &ActionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecretBytes(), nil
	})
	if err != nil || !token.Valid || claims.Purpose != purpose {
		return nil, &apperrors.AuthError{Code: apperrors.CodeInvalidToken, Message: "Invalid or expired token"}
	}
	return claims, nil
}

// AuthRequired validates the JWT, rejects revoked sessions and injects
// claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecretBytes(), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		if session.Default.IsRevoked(claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("tokenExpiry", claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// AdminRequired enforces the single-admin gate server-side. The role is
// recomputed from config on every request, never read from the token.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rolegate.IsAdmin(GetEmail(c), config.C.AdminEmail) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth resolves claims when a valid token is present but lets
// unauthenticated requests through; used by the session endpoint where
// "no identity" is a valid answer
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecretBytes(), nil
		})
		if err == nil && token.Valid && !session.Default.IsRevoked(claims.ID) {
			c.Set("userID", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("jti", claims.ID)
		}
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	id, _ := val.(uint)
	return id
}

// GetEmail extracts caller email from context
func GetEmail(c *gin.Context) string {
	val, _ := c.Get("email")
	email, _ := val.(string)
	return email
}

// GetJTI extracts the token ID from context
func GetJTI(c *gin.Context) string {
	val, _ := c.Get("jti")
	jti, _ := val.(string)
	return jti
}

// GetTokenExpiry extracts the token expiry from context
func GetTokenExpiry(c *gin.Context) (time.Time, error) {
	val, ok := c.Get("tokenExpiry")
	if !ok {
		return time.Time{}, errors.New("token expiry not in context")
	}
	exp, ok := val.(time.Time)
	if !ok {
		return time.Time{}, errors.New("token expiry not in context")
	}
	return exp, nil
}
