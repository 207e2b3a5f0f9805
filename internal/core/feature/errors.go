package feature

import (
	"errors"
	"fmt"
)

// Validation sentinels. Every typed error below matches ErrValidation as well
// as its own sentinel through errors.Is.
var (
	ErrValidation           = errors.New("validation failed")
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrMissingName          = errors.New("missing instance name")
	ErrInvalidKey           = errors.New("invalid property key")
	ErrUnsupportedValueType = errors.New("unsupported value type")
	ErrFactoryClone         = fmt.Errorf("%w: factory configuration cannot be cloned without its factory pid and name", ErrValidation)
)

// InvalidIdentifierError reports a malformed pid, factory pid, instance name
// or coordinate part.
type InvalidIdentifierError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier || target == ErrValidation
}

// MissingNameError is returned when a factory-scoped configuration is
// requested without an instance name.
type MissingNameError struct {
	FactoryPID string
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("factory configuration %q requires an instance name", e.FactoryPID)
}

func (e *MissingNameError) Is(target error) bool {
	return target == ErrMissingName || target == ErrValidation
}

// InvalidKeyError reports a property key that is not a valid identifier.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid property key %q", e.Key)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey || target == ErrValidation
}

// UnsupportedValueTypeError reports a property value outside the accepted
// scalar and array kinds.
type UnsupportedValueTypeError struct {
	Key  string
	Type string
}

func (e *UnsupportedValueTypeError) Error() string {
	return fmt.Sprintf("unsupported value type %s for key %q", e.Type, e.Key)
}

func (e *UnsupportedValueTypeError) Is(target error) bool {
	return target == ErrUnsupportedValueType || target == ErrValidation
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
