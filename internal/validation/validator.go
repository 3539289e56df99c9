package validation

import (
	"regexp"
	"strings"

	"github.com/marketing-site-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidEmail reports whether the string looks like an email address
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateContact validates a contact form submission
func ValidateContact(req *models.ContactRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.Token) == "" {
		errors = append(errors, ValidationError{Field: "token", Message: "token is required"})
	}
	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !ValidEmail(req.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format"})
	}
	if strings.TrimSpace(req.Message) == "" {
		errors = append(errors, ValidationError{Field: "message", Message: "message is required"})
	}

	return errors
}
