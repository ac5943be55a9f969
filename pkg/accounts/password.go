package accounts

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor for new password hashes
const HashCost = 10

// passwordCharset restricts passwords to letters, digits and a fixed symbol
// set, at least 8 characters long. Uppercase and digit requirements are
// checked separately since RE2 has no lookaheads.
var passwordCharset = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*]{8,}$`)

// CheckPasswordPolicy reports whether a password satisfies the policy:
// length >= 8, at least one uppercase ASCII letter, at least one decimal
// digit, and only letters, digits and !@#$%^&*.
func CheckPasswordPolicy(password string) bool {
	if !passwordCharset.MatchString(password) {
		return false
	}

	var hasUpper, hasDigit bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

// HashPassword derives a salted bcrypt hash from the plaintext. A fresh
// random salt is generated on every call and embedded in the output.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword recomputes the hash with the embedded salt and compares.
// Returns true only on a match; never decrypts anything.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
