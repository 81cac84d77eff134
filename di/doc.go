// Package di provides a small type-keyed container for explicit dependency wiring.
//
// Values are registered and resolved by their static Go type. A type can be
// provided in two ways:
//
//   - an instance: a ready value returned as-is by every resolution
//   - a factory: a Factory[T] invoked lazily on first resolution; its result
//     replaces it (memoization), so it runs at most once successfully
//
// Besides the default entry per type, any number of specialized entries can
// be registered for the same type, each selected by a discriminant value of
// an enum-like type (see Specialization). All specializations registered for
// a (type, discriminant type) pair can be resolved at once.
//
// Quick tour
//
//	c := di.New(di.WithName("app"))
//	di.RegisterInstance[Fruit](c, &Banana{})
//	di.RegisterFactory(c, func(c *di.Container) (*Store, error) {
//	    fruit, err := di.Resolve[Fruit](c) // re-entrant resolution
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Store{Fruit: fruit}, nil
//	})
//	store, err := di.Resolve[*Store](c)
//
// Specializations
//
//	type Region int
//	const (
//	    EU Region = iota
//	    US
//	)
//	di.RegisterSpecializedInstance[Fruit](c, EU, &Apple{})
//	di.RegisterSpecializedInstance[Fruit](c, US, &Banana{})
//	eu, err := di.ResolveSpecialized[Fruit](c, EU)
//	all, err := di.ResolveAllSpecialized[Fruit, Region](c)
//
// Errors
//
// Resolution failures are returned, never panicked:
//   - MissingEntryError / MissingSpecializedEntryError (errors.Is ErrMissingEntry /
//     ErrMissingSpecializedEntry)
//   - *FactoryError (errors.Is ErrFactory) wrapping the factory's own error
//
// The only panic is *TypeMismatchError, raised when a stored value does not
// have the type of its key, and the Must* helpers.
//
// The container does not detect dependency cycles and is not meant for
// concurrent mutation. A factory must not resolve its own key.
//
// Import
//
//	"github.com/sghaida/typereg/di"
package di
