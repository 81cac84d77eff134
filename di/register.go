package di

// Factory builds a T, possibly resolving its own dependencies from c.
//
// A factory runs at most once successfully per key: its result replaces it
// in the container. If it returns an error it stays registered and is
// invoked again by the next resolution.
type Factory[T any] func(c *Container) (T, error)

// erase adapts a typed factory to the stored shape. A nil factory becomes
// one that fails with ErrNilFactory, so registration itself never fails.
func erase[T any](f Factory[T]) anyFactory {
	if f == nil {
		return func(*Container) (any, error) { return nil, ErrNilFactory }
	}
	return func(c *Container) (any, error) {
		v, err := f(c)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// RegisterInstance stores v as the default T, replacing any previous entry
// for T. It returns c for chaining.
//
// Resolutions return v itself; register a pointer or interface value when
// callers must observe one shared object.
func RegisterInstance[T any](c *Container, v T) *Container {
	c.putDefault(keyOf[T](), instanceEntry(v))
	return c
}

// RegisterFactory stores f as the default T, replacing any previous entry
// for T. f is not called until T is first resolved. It returns c for chaining.
func RegisterFactory[T any](c *Container, f Factory[T]) *Container {
	c.putDefault(keyOf[T](), entry{kind: kindFactory, factory: erase(f)})
	return c
}

// RegisterSpecializedInstance stores v as the T registered under
// discriminant s, replacing any previous entry for that (T, s) pair, and
// records s as a known specialization of T. It returns c for chaining.
func RegisterSpecializedInstance[T any, S Specialization](c *Container, s S, v T) *Container {
	c.putSpecialized(specializedKeyOf[T](s), instanceEntry(v))
	return c
}

// RegisterSpecializedFactory stores f as the T registered under
// discriminant s and records s as a known specialization of T. It returns c
// for chaining.
func RegisterSpecializedFactory[T any, S Specialization](c *Container, s S, f Factory[T]) *Container {
	c.putSpecialized(specializedKeyOf[T](s), entry{kind: kindSpecializedFactory, factory: erase(f)})
	return c
}
