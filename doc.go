// Package typereg is a type-keyed service registry for Go.
//
// Values are registered and resolved by their static type, optionally
// qualified by an integer-like discriminant (a "specialization"), and may be
// supplied either as ready instances or as factories that run lazily, once,
// and are memoized on success.
//
// See subpackages:
//   - di: the container, registration and resolution API
//   - config: container settings from YAML/JSON files, TYPEREG_* variables and .env files
//   - observability: slog helpers plus OpenTelemetry metrics and tracing hooks
//   - cmd/typereg: prints and checks the effective configuration
//   - examples/grocery: runnable end-to-end example
package typereg
