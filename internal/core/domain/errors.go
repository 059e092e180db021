package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Entity errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrPaymentNotFound    = errors.New("payment record not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrCaseNotFound       = errors.New("social case not found")
	ErrAssistanceNotFound = errors.New("assistance not found")

	ErrDuplicateAttendance = errors.New("attendance already recorded for this member and activity")
	ErrMemberHasDependents = errors.New("member has dependent records and cannot be deleted")
	ErrActivityHasRecords  = errors.New("activity has attendance records and cannot be deleted")
)

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every violated field of one request so the
// client gets the full list in a single response
type ValidationErrors struct {
	Fields []FieldError
}

func (e *ValidationErrors) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Add appends one field violation
func (e *ValidationErrors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field was violated
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsValidationErrors unwraps err into *ValidationErrors if possible
func AsValidationErrors(err error) (*ValidationErrors, bool) {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
