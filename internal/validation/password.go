// Package validation implements the explicit input checks performed before
// requests enter the service layer: the password policy and user field
// validation.
package validation

import (
	"regexp"
	"strings"

	"github.com/rngenius/rngenius-go/internal/apperr"
)

var (
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	lowercaseRe = regexp.MustCompile(`[a-z]`)
	numberRe    = regexp.MustCompile(`[0-9]`)
	specialRe   = regexp.MustCompile(`[!@?#$%^&*]`)
)

// ValidatePassword checks a plaintext password against the account password
// policy. Checks run in a fixed order and the first failure wins; the
// returned error always has field "password".
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return apperr.Validation("password", "Password is required")
	}
	if len(password) < 8 {
		return apperr.Validation("password", "Password is too short, it has to be at least 8 characters long")
	}
	if !uppercaseRe.MatchString(password) {
		return apperr.Validation("password", "Password has to contain at least one uppercase letter")
	}
	if !lowercaseRe.MatchString(password) {
		return apperr.Validation("password", "Password has to contain at least one lowercase letter")
	}
	if !numberRe.MatchString(password) {
		return apperr.Validation("password", "Password has to contain at least one number")
	}
	if !specialRe.MatchString(password) {
		return apperr.Validation("password", "Password has to contain at least one special character")
	}
	return nil
}
