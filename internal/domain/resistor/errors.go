package resistor

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the categories of caller mistakes the decoder rejects.
type ErrorCode string

const (
	ErrCodeBandCount    ErrorCode = "INVALID_BAND_COUNT"
	ErrCodeLength       ErrorCode = "LENGTH_MISMATCH"
	ErrCodeUnknownColor ErrorCode = "UNKNOWN_COLOR"
	ErrCodeRoleMismatch ErrorCode = "ROLE_MISMATCH"
)

// DomainError is a typed error enriched with the offending values.
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches another DomainError with the same code. A target without a
// message matches any message.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if e == nil || !errors.As(target, &domainErr) || domainErr == nil {
		return false
	}
	if e.Code != domainErr.Code {
		return false
	}
	return domainErr.Message == "" || domainErr.Message == e.Message
}

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr == nil {
		return false
	}
	return domainErr.Code == code
}

func newDomainError(code ErrorCode, message string, context map[string]interface{}) *DomainError {
	return &DomainError{Code: code, Message: message, Context: context}
}

func newBandCountError(bandCount int) *DomainError {
	return newDomainError(ErrCodeBandCount, fmt.Sprintf("unsupported band count %d, want one of %v", bandCount, supportedBandCounts), map[string]interface{}{
		"band_count": bandCount,
	})
}

func newLengthError(want, got int) *DomainError {
	return newDomainError(ErrCodeLength, fmt.Sprintf("selection has %d colors, layout has %d bands", got, want), map[string]interface{}{
		"want": want,
		"got":  got,
	})
}

func newUnknownColorError(name string) *DomainError {
	return newDomainError(ErrCodeUnknownColor, fmt.Sprintf("unknown color %q", name), map[string]interface{}{
		"color": name,
	})
}

func newRoleMismatchError(position int, role Role, name ColorName) *DomainError {
	return newDomainError(ErrCodeRoleMismatch, fmt.Sprintf("%s is not valid for band %d (%s)", name, position+1, role.Name), map[string]interface{}{
		"position": position,
		"role":     string(role.Kind),
		"color":    string(name),
	})
}
