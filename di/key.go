package di

import (
	"reflect"
	"strconv"
)

// TypeID identifies a static Go type inside the container.
//
// It is comparable and usable as a map key. Two TypeIDs are equal iff they
// denote the same type.
type TypeID struct {
	t reflect.Type
}

// TypeOf returns the TypeID of T.
//
// Interface types are supported: TypeOf[io.Reader]() is the identity of the
// interface itself, not of whatever happens to implement it.
func TypeOf[T any]() TypeID {
	return TypeID{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// IsZero reports whether id was not obtained from TypeOf.
func (id TypeID) IsZero() bool { return id.t == nil }

// String returns the Go type name, e.g. "*grocery.Banana".
func (id TypeID) String() string {
	if id.t == nil {
		return "<nil>"
	}
	return id.t.String()
}

// Specialization is the capability a discriminant type must have: a
// lossless, injective mapping to and from int64. Enum-like types declared
// with iota over any of these underlying types qualify.
type Specialization interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// typeKey is the default key: a bare type identity.
type typeKey struct {
	typ TypeID
}

func (k typeKey) String() string { return k.typ.String() }

// specializedKey identifies an entry by owner type, discriminant type and
// discriminant value.
type specializedKey struct {
	typ   TypeID
	spec  TypeID
	value int64
}

func (k specializedKey) String() string {
	return k.typ.String() + "[" + k.spec.String() + "=" + strconv.FormatInt(k.value, 10) + "]"
}

func (k specializedKey) known() knownKey {
	return knownKey{typ: k.typ, spec: k.spec}
}

// knownKey groups every specializedKey sharing the same owner and
// discriminant type. It never addresses an entry directly.
type knownKey struct {
	typ  TypeID
	spec TypeID
}

func (k knownKey) String() string {
	return k.typ.String() + "[" + k.spec.String() + "]"
}

func keyOf[T any]() typeKey {
	return typeKey{typ: TypeOf[T]()}
}

func specializedKeyOf[T any, S Specialization](s S) specializedKey {
	return specializedKey{typ: TypeOf[T](), spec: TypeOf[S](), value: int64(s)}
}

func knownKeyOf[T any, S Specialization]() knownKey {
	return knownKey{typ: TypeOf[T](), spec: TypeOf[S]()}
}
