package di

import (
	"slices"
)

// entryKind tags the payload held by an entry.
type entryKind uint8

const (
	kindInstance entryKind = iota + 1
	kindFactory
	kindSpecializedFactory
)

func (k entryKind) String() string {
	switch k {
	case kindInstance:
		return "instance"
	case kindFactory:
		return "factory"
	case kindSpecializedFactory:
		return "specialized_factory"
	default:
		return "unknown"
	}
}

// anyFactory is a Factory with its result erased to any.
type anyFactory func(c *Container) (any, error)

// entry is the stored payload at a key: a ready instance or a factory that
// has not produced one yet.
type entry struct {
	kind     entryKind
	instance any
	factory  anyFactory
}

func instanceEntry(v any) entry { return entry{kind: kindInstance, instance: v} }

// store maps keys to entries. Writes overwrite.
//
// It performs no locking of its own; the owning Container serializes access.
type store[K comparable] struct {
	items map[K]entry
}

func newStore[K comparable]() *store[K] {
	return &store[K]{items: map[K]entry{}}
}

// put stores e under key and returns the store for chaining.
func (s *store[K]) put(key K, e entry) *store[K] {
	s.items[key] = e
	return s
}

func (s *store[K]) get(key K) (entry, bool) {
	e, ok := s.items[key]
	return e, ok
}

func (s *store[K]) has(key K) bool {
	_, ok := s.items[key]
	return ok
}

func (s *store[K]) len() int { return len(s.items) }

// knownSet records every discriminant value registered for one knownKey.
// Values are never removed.
type knownSet struct {
	members map[int64]struct{}
	order   []int64
}

func newKnownSet() *knownSet {
	return &knownSet{members: map[int64]struct{}{}}
}

func (k *knownSet) add(v int64) {
	if _, ok := k.members[v]; ok {
		return
	}
	k.members[v] = struct{}{}
	k.order = append(k.order, v)
}

// values returns a copy of the recorded values in the requested order.
func (k *knownSet) values(o Ordering) []int64 {
	out := slices.Clone(k.order)
	if o == OrderByValue {
		slices.Sort(out)
	}
	return out
}
