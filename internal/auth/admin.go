package auth

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const SessionTimeout = 12 * time.Hour

var WrongCredentialsError = errors.New("Either username or password is incorrect.")
var NoAdminError = errors.New("No admin account is configured.")

// Admin is the single account allowed to edit the portfolio.
type Admin struct {
	Username     string
	PasswordHash string
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// LogIn checks the credentials and returns a signed session token.
func (a *Admin) LogIn(username, password string) (signedToken string, err error) {
	if a.PasswordHash == "" {
		return "", NoAdminError
	}

	if username != a.Username {
		return "", WrongCredentialsError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", WrongCredentialsError
		}
		return "", err
	}

	signedToken, err = Authorize(username, SessionTimeout)
	if err != nil {
		return "", err
	}

	slog.Info("Admin authentication successful", slog.String("username", username))
	return signedToken, nil
}
