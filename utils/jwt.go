package utils

import (
	"errors"
	"time"

	"jojocolaresbeauty/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateAdminToken creates a signed JWT for the back-office session. The
// token expires after the specified duration.
func GenerateAdminToken(duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateAdminToken parses and validates a token string and confirms the
// admin role claim.
func ValidateAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return errors.New("token does not carry the admin role")
	}
	return nil
}
