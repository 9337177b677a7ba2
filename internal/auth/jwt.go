package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dchest/uniuri"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "folio-web"

var jwtSecret string

var InvalidTokenError = errors.New("invalid token")

func InitJWT(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET not specified")
	}

	jwtSecret = secret
	return nil
}

func JwtKeyFunc(_ *jwt.Token) (interface{}, error) {
	return []byte(jwtSecret), nil
}

func Authorize(username string, timeout time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(timeout)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uniuri.NewLen(24),
	})
	return token.SignedString([]byte(jwtSecret))
}

// Verify returns the username a token was issued for.
func Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, JwtKeyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Subject == "" {
		return "", InvalidTokenError
	}

	return claims.Subject, nil
}
