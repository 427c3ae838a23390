package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/unirides/unirides/internal/pkg/models"
)

// GenerateToken signs an HS256 token for the given user
func GenerateToken(user *models.User, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"user_type": string(user.UserType),
		"exp":       expiresAt,
		"iss":       cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token and returns its claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
