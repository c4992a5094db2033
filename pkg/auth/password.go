package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

// passwordSymbols is the fixed set of special characters the strength policy
// accepts.
const passwordSymbols = "@$!%*?&"

// validatePassword enforces the strength policy: minimum length plus at
// least one lowercase letter, one uppercase letter, one digit and one symbol
// from the allowed set.
func validatePassword(password string) error {
	if len(password) < 6 {
		return apperror.NewValidation("Password must be at least 6 characters long")
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return apperror.NewValidation("Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character (@$!%*?&)")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
