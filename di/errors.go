package di

import (
	"errors"
	"strconv"
)

var (
	// ErrMissingEntry is returned when no default entry exists for a type,
	// or when the entry found there cannot be resolved through the default path.
	ErrMissingEntry = errors.New("di: missing entry")

	// ErrMissingSpecializedEntry is the specialized-key analogue of ErrMissingEntry.
	ErrMissingSpecializedEntry = errors.New("di: missing specialized entry")

	// ErrFactory matches every FactoryError via errors.Is.
	ErrFactory = errors.New("di: factory failed")

	// ErrNilFactory is the cause reported when a nil factory was registered
	// and later resolved.
	ErrNilFactory = errors.New("di: nil factory")
)

// MissingEntryError is returned by Resolve when nothing usable is registered
// under the default key of Type.
type MissingEntryError struct{ Type string }

// Error implements the error interface.
func (e MissingEntryError) Error() string {
	// Example: di: missing entry for "*grocery.Banana"
	return "di: missing entry for " + strconv.Quote(e.Type)
}

// Is reports whether target is ErrMissingEntry.
func (e MissingEntryError) Is(target error) bool { return target == ErrMissingEntry }

// MissingSpecializedEntryError is returned by ResolveSpecialized when nothing
// usable is registered under the specialized key.
type MissingSpecializedEntryError struct {
	Type           string
	Specialization string
	Value          int64
}

// Error implements the error interface.
func (e MissingSpecializedEntryError) Error() string {
	// Example: di: missing specialized entry for "grocery.Fruit" (grocery.Store=1)
	return "di: missing specialized entry for " + strconv.Quote(e.Type) +
		" (" + e.Specialization + "=" + strconv.FormatInt(e.Value, 10) + ")"
}

// Is reports whether target is ErrMissingSpecializedEntry.
func (e MissingSpecializedEntryError) Is(target error) bool {
	return target == ErrMissingSpecializedEntry
}

// FactoryError wraps the error returned by a factory during resolution.
//
// The failing entry is left in place, so a later resolution invokes the
// factory again. Err is the cause as returned by the factory; when the
// factory itself failed to resolve a dependency, Err is that dependency's
// error and errors.Is sees through both layers.
type FactoryError struct {
	Type string

	// Specialized is true when the factory was registered under a
	// specialized key; Specialization and Value are set only then.
	Specialized    bool
	Specialization string
	Value          int64

	Err error
}

// Error implements the error interface.
func (e *FactoryError) Error() string {
	msg := "di: factory for " + strconv.Quote(e.Type)
	if e.Specialized {
		msg += " (" + e.Specialization + "=" + strconv.FormatInt(e.Value, 10) + ")"
	}
	msg += " failed"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the factory's own error.
func (e *FactoryError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFactory.
func (e *FactoryError) Is(target error) bool { return target == ErrFactory }

// TypeMismatchError is the panic payload raised when a stored instance does
// not have the type its key claims. This can only happen when the
// registration discipline is broken, so it is never returned as an error.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	// Example: di: entry "grocery.Fruit" holds *grocery.Chicken, want grocery.Fruit
	return "di: entry " + strconv.Quote(e.Key) + " holds " + e.Got + ", want " + e.Want
}

// IsMissing reports whether err is, or wraps, either missing-entry error.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingEntry) || errors.Is(err, ErrMissingSpecializedEntry)
}

// IsFactoryError reports whether err is, or wraps, a FactoryError.
func IsFactoryError(err error) bool {
	return errors.Is(err, ErrFactory)
}
