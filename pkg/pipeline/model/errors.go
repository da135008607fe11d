package model

import (
	"github.com/pkg/errors"
)

// Error classes. Every specific error below matches its class with errors.Is.
var (
	ErrConfig = errors.New("config error")
	ErrDomain = errors.New("domain error")
	ErrBounds = errors.New("bounds error")
)

var (
	ErrUnknownAttribute   = newClassError(ErrConfig, "unknown attribute")
	ErrDuplicateAttribute = newClassError(ErrConfig, "duplicate attribute")
	ErrLookupLength       = newClassError(ErrConfig, "lookup table length does not match bucket grid")
	ErrVectorOrder        = newClassError(ErrConfig, "interpolation thresholds must be strictly increasing")
	ErrZeroLength         = newClassError(ErrConfig, "gradient length must be greater than 0")
	ErrInvalidSize        = newClassError(ErrConfig, "width and height must be greater than 0")
	ErrInvalidScale       = newClassError(ErrConfig, "noise scale must be greater than 0")
	ErrInvalidRange       = newClassError(ErrConfig, "min value must not exceed max value")
	ErrMissingInput       = newClassError(ErrConfig, "1d generator must be wrapped by apply_to_x, apply_to_y or apply_to_distance")
	ErrMissingGenerator   = newClassError(ErrConfig, "generator must be set")
	ErrMissingTransformer = newClassError(ErrConfig, "transformer must be set")
	ErrUnknownKind        = newClassError(ErrConfig, "unknown kind")

	ErrInvalidDomain  = newClassError(ErrDomain, "domain min must be lower than domain max")
	ErrDivisionByZero = newClassError(ErrDomain, "division by zero")
	ErrNonFinite      = newClassError(ErrDomain, "value is not finite")

	ErrOutOfBounds = newClassError(ErrBounds, "coordinate out of bounds")
)

type classError struct {
	class error
	msg   string
}

func newClassError(class error, msg string) error {
	return &classError{class: class, msg: msg}
}

func (e *classError) Error() string {
	return e.msg
}

// Is reports whether target is the class of e.
func (e *classError) Is(target error) bool {
	return target == e.class
}

// FieldError reports the configuration field an error originates from.
type FieldError struct {
	Field string
	Err   error
}

// WithField attaches field to err. Fields nest from the outside in: wrapping a FieldError
// prefixes its path.
func WithField(err error, field string) error {
	if err == nil {
		return nil
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return &FieldError{Field: field + "." + fieldErr.Field, Err: fieldErr.Err}
	}

	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
