package validation

import (
	"regexp"
	"strings"

	"github.com/rngenius/rngenius-go/internal/apperr"
	"github.com/rngenius/rngenius-go/internal/model"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateUser checks the identity fields of a user record. The password is
// validated separately via ValidatePassword.
func ValidateUser(u *model.User) error {
	if strings.TrimSpace(u.FirstName) == "" {
		return apperr.Validation("firstName", "First name is required")
	}
	if strings.TrimSpace(u.LastName) == "" {
		return apperr.Validation("lastName", "Last name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return apperr.Validation("email", "Email is required")
	}
	if !emailRe.MatchString(u.Email) {
		return apperr.Validation("email", "Email value is invalid, it has to be of the following format xxx@yyy.zzz")
	}
	return nil
}
