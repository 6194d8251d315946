package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/ldanie38/geniuscrm/pkg/constants"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// commonPasswords holds passwords that are rejected regardless of length.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "87654321": {},
	"qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {},
	"welcome123": {}, "letmein1": {}, "abc12345": {}, "11111111": {},
	"00000000": {}, "trustno1": {}, "superman": {}, "starwars": {},
	"whatever": {}, "dragon123": {}, "monkey123": {}, "master123": {},
	"changeme": {}, "admin123": {}, "administrator": {}, "qazwsxedc": {},
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a plain password with a hashed password.
// An empty hash never matches: such accounts have no usable password.
func VerifyPassword(password, hash string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks a new password against the account it belongs to.
func ValidatePassword(password, username, email string) error {
	if len(password) < constants.PasswordMinLength {
		return errors.New("password must be at least 8 characters long")
	}

	if len(password) > constants.PasswordMaxLength {
		return errors.New("password must not exceed 128 characters")
	}

	if isAllDigits(password) {
		return errors.New("password can't be entirely numeric")
	}

	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		return errors.New("password is too common")
	}

	for _, attr := range similarityAttributes(username, email) {
		if strings.Contains(lower, attr) || strings.Contains(attr, lower) {
			return errors.New("password is too similar to the username or email")
		}
	}

	return nil
}

// IsValidEmail validates an email address format
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailRegex.MatchString(email)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// similarityAttributes returns the lowercased account attributes a password
// may not contain. Fragments shorter than 4 characters are ignored.
func similarityAttributes(username, email string) []string {
	var attrs []string
	add := func(v string) {
		v = strings.ToLower(strings.TrimSpace(v))
		if len(v) >= 4 {
			attrs = append(attrs, v)
		}
	}
	add(username)
	if local, domain, ok := strings.Cut(email, "@"); ok {
		add(local)
		add(strings.SplitN(domain, ".", 2)[0])
	}
	return attrs
}
