// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"haulpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Generate JWT secret key (run once initially)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password. bcrypt embeds a random per-hash salt and is deliberately
// slow; two hashes of the same password never match byte-for-byte.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password in constant time
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Generate JWT token carrying the role claim
func GenerateToken(userID, username, role string) (string, error) {
	expiryHours := 24 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

func validRole(role string) bool {
	for _, r := range models.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleFromRequest parses the bearer token if one is present and returns the
// role claim, or "" when the request carries no usable token. Used where
// authentication is optional (registration of additional users).
func RoleFromRequest(c *gin.Context) string {
	claims, err := parseClaims(c)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	if !validRole(role) {
		return ""
	}
	return role
}

func parseClaims(c *gin.Context) (jwt.MapClaims, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return nil, errors.New("authorization header required")
	}

	if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
		tokenString = tokenString[7:]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RequireRole gates a route on an allow-list of roles carried in the signed
// token. No allow-list means any authenticated role may pass. Missing or
// unrecognized credentials are 401; a recognized role outside the allow-list
// is 403 naming the required roles.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Missing or invalid role"})
			return
		}

		role, _ := claims["role"].(string)
		if !validRole(role) {
			c.AbortWithStatusJSON(401, gin.H{"error": "Missing or invalid role"})
			return
		}

		if len(allowed) > 0 {
			permitted := false
			for _, a := range allowed {
				if a == role {
					permitted = true
					break
				}
			}
			if !permitted {
				c.AbortWithStatusJSON(403, gin.H{"error": "Requires role: " + strings.Join(allowed, ", ")})
				return
			}
		}

		c.Set("userId", claims["sub"])
		c.Set("username", claims["username"])
		c.Set("role", role)
		c.Next()
	}
}
