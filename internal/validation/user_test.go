package validation

import (
	"testing"

	"github.com/rngenius/rngenius-go/internal/apperr"
	"github.com/rngenius/rngenius-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *model.User {
	return &model.User{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@ucll.be",
	}
}

func TestValidateUser_Valid(t *testing.T) {
	assert.NoError(t, ValidateUser(validUser()))
}

func TestValidateUser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.User)
		field   string
		message string
	}{
		{"missing first name", func(u *model.User) { u.FirstName = " " }, "firstName", "First name is required"},
		{"missing last name", func(u *model.User) { u.LastName = "" }, "lastName", "Last name is required"},
		{"missing email", func(u *model.User) { u.Email = "" }, "email", "Email is required"},
		{"malformed email", func(u *model.User) { u.Email = "john.doe" }, "email", "Email value is invalid, it has to be of the following format xxx@yyy.zzz"},
		{"email without tld", func(u *model.User) { u.Email = "john@doe" }, "email", "Email value is invalid, it has to be of the following format xxx@yyy.zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)

			var appErr *apperr.Error
			require.ErrorAs(t, ValidateUser(u), &appErr)
			assert.Equal(t, apperr.KindValidation, appErr.Kind)
			assert.Equal(t, tt.field, appErr.Field)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}
