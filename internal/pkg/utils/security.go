package utils

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/exceptions"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type AccessTokenClaims struct {
	UserID  string
	IsAdmin bool
}

func ExtractBearerToken(authorizationHeader string) (string, error) {
	if !strings.HasPrefix(authorizationHeader, constvars.AuthorizationBearerPrefix) {
		return "", exceptions.ErrTokenMissing(nil)
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, constvars.AuthorizationBearerPrefix))
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return token, nil
}

func ParseAccessToken(tokenString, secret string) (*AccessTokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return nil, exceptions.ErrTokenMissingSubject(nil)
	}

	isAdmin, _ := claims["isAdmin"].(bool)
	return &AccessTokenClaims{
		UserID:  userID,
		IsAdmin: isAdmin,
	}, nil
}

func GenerateAccessToken(userID string, isAdmin bool, secret string, expiry int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":      userID,
		"isAdmin": isAdmin,
		"exp":     expiry,
	})
	return token.SignedString([]byte(secret))
}
