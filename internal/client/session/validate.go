package session

import (
	"regexp"
	"sort"
	"strings"
)

// emailPattern accepts non-empty local and domain parts separated by '@',
// with a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field names used in validation errors.
const (
	FieldName           = "name"
	FieldNationalID     = "nationalId"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldRepeatPassword = "repeatPassword"
)

// ValidationError reports field-scoped input errors. It blocks submission:
// no network call is made and no state is mutated while it is non-nil.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// ValidateLogin checks login form input. Returns nil when valid.
func ValidateLogin(email, password string) *ValidationError {
	fields := map[string]string{}
	if !emailPattern.MatchString(email) {
		fields[FieldEmail] = "invalid email address"
	}
	if strings.TrimSpace(password) == "" {
		fields[FieldPassword] = "password is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateRegistration checks registration form input. Returns nil when valid.
func ValidateRegistration(name, nationalID, email, password, repeatPassword string) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields[FieldName] = "name is required"
	}
	if strings.TrimSpace(nationalID) == "" {
		fields[FieldNationalID] = "national id is required"
	}
	if !emailPattern.MatchString(email) {
		fields[FieldEmail] = "invalid email address"
	}
	if len(password) < 6 {
		fields[FieldPassword] = "password must be at least 6 characters"
	}
	if password != repeatPassword {
		fields[FieldRepeatPassword] = "passwords do not match"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
