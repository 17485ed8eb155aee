package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

// ProvisionInput holds parameters for creating an identity.
type ProvisionInput struct {
	Username string
	Email    string
	Role     string
}

// Validate validates the provisioning input.
func (i ProvisionInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	} else if strings.ContainsAny(username, " \t\r\n") {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain whitespace"})
	}

	if email := strings.TrimSpace(i.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if _, ok := domain.ParseUserRole(i.Role); !ok {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be USER or ADMIN"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ProvisionInput) email() *string {
	email := strings.TrimSpace(i.Email)
	if email == "" {
		return nil
	}
	return &email
}
