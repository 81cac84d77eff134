package di

import (
	"reflect"
)

// cast recovers a T from a stored payload. A mismatch means an entry was
// stored under the wrong key, which the typed API cannot produce, so it
// panics instead of returning an error.
func cast[T any](key string, v any) T {
	if v == nil {
		// nil interface values are stored as untyped nil.
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(&TypeMismatchError{
			Key:  key,
			Want: TypeOf[T]().String(),
			Got:  reflect.TypeOf(v).String(),
		})
	}
	return t
}

// Resolve returns the default T.
//
// If T was registered as an instance it is returned directly. If it was
// registered as a factory, the factory is invoked with c, its result is
// stored in place of the factory and returned. Errors:
//   - MissingEntryError when nothing is registered for T
//   - *FactoryError when the factory fails; the factory stays registered
func Resolve[T any](c *Container) (T, error) {
	key := keyOf[T]()
	v, err := c.resolveDefault(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](key.String(), v), nil
}

// ResolveSpecialized returns the T registered under discriminant s.
//
// It follows the same rules as Resolve, reporting
// MissingSpecializedEntryError instead of MissingEntryError.
func ResolveSpecialized[T any, S Specialization](c *Container, s S) (T, error) {
	key := specializedKeyOf[T](s)
	v, err := c.resolveSpecialized(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](key.String(), v), nil
}

// ResolveAllSpecialized resolves T for every discriminant of type S ever
// registered for T, in the container's Ordering.
//
// The first failure aborts the enumeration and is returned; no partial
// result is returned with it. A pair with no registrations yields an empty,
// non-nil slice.
func ResolveAllSpecialized[T any, S Specialization](c *Container) ([]T, error) {
	values := c.knownValues(knownKeyOf[T, S]())
	out := make([]T, 0, len(values))
	for _, v := range values {
		t, err := ResolveSpecialized[T](c, S(v))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Specializations returns every discriminant of type S registered for T, in
// the container's Ordering. Nothing is constructed.
func Specializations[T any, S Specialization](c *Container) []S {
	values := c.knownValues(knownKeyOf[T, S]())
	out := make([]S, len(values))
	for i, v := range values {
		out[i] = S(v)
	}
	return out
}

// MustResolve returns the default T or panics with the resolution error.
// Useful in composition roots where a missing registration should fail fast.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// MustResolveSpecialized returns the T registered under s or panics with the
// resolution error.
func MustResolveSpecialized[T any, S Specialization](c *Container, s S) T {
	v, err := ResolveSpecialized[T](c, s)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a default entry exists for T, without constructing it.
func Has[T any](c *Container) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.has(keyOf[T]())
}

// HasSpecialized reports whether an entry exists for T under s, without
// constructing it.
func HasSpecialized[T any, S Specialization](c *Container, s S) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.specialized.has(specializedKeyOf[T](s))
}
