package di

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sghaida/typereg/observability"
)

// Container is a type-keyed object registry.
//
// It holds two independent entry stores, one for default entries keyed by
// type and one for specialized entries keyed by (type, discriminant type,
// discriminant value), plus the set of discriminant values ever registered
// for each (type, discriminant type) pair.
//
// A Container is meant to be owned by one goroutine at a time. The internal
// mutex only keeps the maps consistent; it is never held while a factory
// runs, so factories may resolve other entries of the same container.
type Container struct {
	mu sync.Mutex

	id  string
	opt Options
	log *slog.Logger

	// ctx carries the span of the factory currently running, if any.
	ctx context.Context

	entries     *store[typeKey]
	specialized *store[specializedKey]
	known       map[knownKey]*knownSet
}

// New creates an empty container with the provided options.
func New(opts ...Option) *Container {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Name == "" {
		o.Name = "default"
	}
	if o.Logger == nil {
		o.Logger = observability.DiscardLogger()
	}
	if o.Metrics == nil {
		o.Metrics = observability.NoopMetrics{}
	}
	if o.Spans == nil {
		o.Spans = observability.NoopSpanManager{}
	}

	id := uuid.NewString()
	return &Container{
		id:          id,
		opt:         o,
		log:         observability.EnrichLogger(o.Logger, id, o.Name),
		ctx:         context.Background(),
		entries:     newStore[typeKey](),
		specialized: newStore[specializedKey](),
		known:       map[knownKey]*knownSet{},
	}
}

// ID returns the unique identifier assigned to the container at creation.
func (c *Container) ID() string { return c.id }

// Name returns the configured container name.
func (c *Container) Name() string { return c.opt.Name }

// Ordering returns the configured enumeration order.
func (c *Container) Ordering() Ordering { return c.opt.Ordering }

// Context returns the context of the factory currently being invoked, or
// context.Background() outside of factories. Factories can pass it on to
// their own work so that it is traced under the factory span.
func (c *Container) Context() context.Context { return c.ctx }

// Len returns the number of default plus specialized entries.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.len() + c.specialized.len()
}

func (c *Container) putDefault(key typeKey, e entry) {
	c.mu.Lock()
	c.entries.put(key, e)
	c.mu.Unlock()
	observability.LogRegistered(c.log, key.String(), e.kind.String())
}

func (c *Container) putSpecialized(key specializedKey, e entry) {
	c.mu.Lock()
	c.specialized.put(key, e)
	kk := key.known()
	set, ok := c.known[kk]
	if !ok {
		set = newKnownSet()
		c.known[kk] = set
	}
	set.add(key.value)
	c.mu.Unlock()
	observability.LogRegistered(c.log, key.String(), e.kind.String())
}

func (c *Container) getDefault(key typeKey) (entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.get(key)
}

func (c *Container) getSpecialized(key specializedKey) (entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.specialized.get(key)
}

// knownValues returns the recorded discriminants for kk, creating an empty
// set on first use.
func (c *Container) knownValues(kk knownKey) []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.known[kk]
	if !ok {
		set = newKnownSet()
		c.known[kk] = set
	}
	return set.values(c.opt.Ordering)
}

// invoke runs f with the container, tracking it with a span, a metric and
// log records. The container lock is not held.
func (c *Container) invoke(key string, f anyFactory) (any, error) {
	parent := c.ctx
	ctx, span := c.opt.Spans.StartFactorySpan(parent, c.id, key)
	c.ctx = ctx
	defer func() { c.ctx = parent }()

	observability.LogFactoryStart(c.log, key)
	elapsed := observability.TimedOperation()

	v, err := f(c)

	d := elapsed()
	c.opt.Metrics.RecordFactory(ctx, key, d, err)
	c.opt.Spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogFactoryError(c.log, key, err, observability.Milliseconds(d))
		return nil, err
	}
	observability.LogFactoryComplete(c.log, key, observability.Milliseconds(d))
	return v, nil
}

func (c *Container) hit(key string) {
	c.opt.Metrics.RecordResolution(c.ctx, key, observability.OutcomeHit)
	observability.LogResolved(c.log, key)
}

func (c *Container) miss(key string) {
	c.opt.Metrics.RecordResolution(c.ctx, key, observability.OutcomeMissing)
	observability.LogMissing(c.log, key)
}

func (c *Container) record(key, outcome string) {
	c.opt.Metrics.RecordResolution(c.ctx, key, outcome)
}

// resolveDefault implements the default resolution path on erased values.
func (c *Container) resolveDefault(key typeKey) (any, error) {
	name := key.String()
	e, ok := c.getDefault(key)
	if !ok {
		c.miss(name)
		return nil, MissingEntryError{Type: name}
	}

	switch e.kind {
	case kindInstance:
		c.hit(name)
		return e.instance, nil
	case kindFactory:
		v, err := c.invoke(name, e.factory)
		if err != nil {
			c.record(name, observability.OutcomeFailed)
			return nil, &FactoryError{Type: name, Err: err}
		}
		c.mu.Lock()
		c.entries.put(key, instanceEntry(v))
		c.mu.Unlock()
		c.record(name, observability.OutcomeBuilt)
		return v, nil
	default:
		c.miss(name)
		return nil, MissingEntryError{Type: name}
	}
}

// resolveSpecialized implements the specialized resolution path on erased values.
func (c *Container) resolveSpecialized(key specializedKey) (any, error) {
	name := key.String()
	e, ok := c.getSpecialized(key)
	if !ok {
		c.miss(name)
		return nil, missingSpecialized(key)
	}

	switch e.kind {
	case kindInstance:
		c.hit(name)
		return e.instance, nil
	case kindSpecializedFactory:
		v, err := c.invoke(name, e.factory)
		if err != nil {
			c.record(name, observability.OutcomeFailed)
			return nil, &FactoryError{
				Type:           key.typ.String(),
				Specialized:    true,
				Specialization: key.spec.String(),
				Value:          key.value,
				Err:            err,
			}
		}
		c.mu.Lock()
		c.specialized.put(key, instanceEntry(v))
		c.mu.Unlock()
		c.record(name, observability.OutcomeBuilt)
		return v, nil
	default:
		c.miss(name)
		return nil, missingSpecialized(key)
	}
}

func missingSpecialized(key specializedKey) error {
	return MissingSpecializedEntryError{
		Type:           key.typ.String(),
		Specialization: key.spec.String(),
		Value:          key.value,
	}
}
