package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindInvalidPricingConfig
	KindBusinessRule
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindInvalidPricingConfig:
		return "invalid_pricing_config"
	case KindBusinessRule:
		return "business_rule"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified application error. Two errors are the same for
// errors.Is when their codes match, so sentinels can be compared even after
// the message was specialised.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Withf returns a copy of e carrying a more specific message.
func (e *Error) Withf(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: fmt.Sprintf(format, args...), Err: e.Err}
}

// Wrap returns a copy of e with cause attached.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: cause}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func NotFound(code, format string, args ...any) *Error {
	return New(KindNotFound, code, fmt.Sprintf(format, args...))
}

func Validation(code, format string, args ...any) *Error {
	return New(KindValidation, code, fmt.Sprintf(format, args...))
}

func Conflict(code, format string, args ...any) *Error {
	return New(KindConflict, code, fmt.Sprintf(format, args...))
}
