package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Identities ────────────────────────────────────────────────────────────────

// Identity is the registry key: an opaque, stable token identifying a
// constructible service type. Two identities refer to the same service if
// and only if they are the same reflect.Type.
type Identity = reflect.Type

// TypeOf returns the Identity token for T.
//
//	container.TypeOf[*UserService]()   // concrete pointer type
//	container.TypeOf[Logger]()         // interface type
func TypeOf[T any]() Identity {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory builds a concrete service value from the container. Dependencies
// the factory needs are resolved through the container it receives.
type Factory func(c *Container) (any, error)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the service registry: a mapping from type identities to
// singleton instances.
//
// It supports:
//   - Singleton (register a factory, constructed once on first resolution)
//   - Instance (register a pre-built value)
//   - Make / Resolve (generic, typed)
//   - Alias (resolve one identity through another)
//   - Dependency bindings (setter injection after construction — see When / Bind)
//
// Every identity maps to at most one live instance. Registering an identity
// again overwrites the previous registration; lifetimes other than singleton
// are out of scope.
type Container struct {
	mu sync.RWMutex

	// identity → factory (not yet constructed)
	factories map[Identity]Factory

	// identity → resolved singleton instance
	instances map[Identity]any

	// alias → canonical identity
	aliases map[Identity]Identity

	// dependency bindings in registration order
	bindings []*dependencyBinding
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		factories: make(map[Identity]Factory),
		instances: make(map[Identity]any),
		aliases:   make(map[Identity]Identity),
	}
	// The container can resolve itself.
	c.instances[TypeOf[*Container]()] = c
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Singleton registers a factory whose result is cached after the first
// resolution. Nothing is constructed at registration time, so registration
// order never matters: every dependency a factory resolves only needs to be
// registered by the time the provider registry boots.
//
//	c.Singleton(container.TypeOf[*UserService](), func(c *container.Container) (any, error) {
//	    return &UserService{}, nil
//	})
func (c *Container) Singleton(identity Identity, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(identity)
	delete(c.instances, key)
	c.factories[key] = factory
	c.resetBindings(key)
}

// Instance registers a pre-built value as the singleton for an identity,
// overwriting any prior registration. A previously resolved instance stays
// valid for anyone still holding it, but is no longer reachable through the
// container.
//
//	c.Instance(container.TypeOf[*config.Config](), cfg)
func (c *Container) Instance(identity Identity, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(identity)
	delete(c.factories, key)
	c.instances[key] = instance
	c.resetBindings(key)
}

// Alias registers an alternative identity for a canonical one. Resolving
// the alias resolves the canonical registration.
//
//	c.Alias(container.TypeOf[*ConsoleLogger](), container.TypeOf[Logger]())
func (c *Container) Alias(identity, alias Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if identity == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", identity))
	}
	c.aliases[alias] = c.canonical(identity)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an identity from the container.
//
// If the identity was registered with Instance, the stored value is returned.
// If it was registered with Singleton, the first Make constructs the value,
// applies its dependency bindings, caches it, and every later Make returns
// that same instance. An identity with no registration fails with a
// *LookupError; no default value is ever substituted.
//
// Bindings still pending for a cached instance (a pre-built value, or an
// owner whose registration was replaced) are applied before it is returned.
func (c *Container) Make(identity Identity) (any, error) {
	key := c.canonical(identity)

	// Singleton instance cache.
	c.mu.RLock()
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		if err := c.wire(key, inst); err != nil {
			return nil, err
		}
		return inst, nil
	}
	factory, ok := c.factories[key]
	c.mu.RUnlock()

	if !ok {
		return nil, &LookupError{Identity: key}
	}

	return c.build(key, factory)
}

// build constructs a singleton, wires its dependency bindings and caches it.
// The instance is cached only after the factory and every binding succeed,
// so a failed construction registers nothing.
func (c *Container) build(key Identity, factory Factory) (any, error) {
	instance, err := factory(c)
	if err != nil {
		return nil, fmt.Errorf("container: factory for [%s]: %w", key, err)
	}

	if err := c.wire(key, instance); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.instances[key] = instance
	c.mu.Unlock()

	return instance, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound reports whether an identity has a registration (factory or instance).
func (c *Container) Bound(identity Identity) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(identity)
	_, hasFactory := c.factories[key]
	_, hasInstance := c.instances[key]
	return hasFactory || hasInstance
}

// Resolved reports whether the identity's singleton has been materialized.
func (c *Container) Resolved(identity Identity) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(identity)]
	return ok
}

// Forget removes all registrations for an identity (factory + instance).
// Intended for tests; entries are never removed in normal operation.
func (c *Container) Forget(identity Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(identity)
	delete(c.factories, key)
	delete(c.instances, key)
	c.resetBindings(key)
}

// Flush resets the entire container, keeping only the self-registration.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factories = make(map[Identity]Factory)
	c.instances = make(map[Identity]any)
	c.aliases = make(map[Identity]Identity)
	c.bindings = nil
	c.instances[TypeOf[*Container]()] = c
}

// Identities returns all registered identity keys (for debugging).
func (c *Container) Identities() []Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Identity, 0, len(c.factories)+len(c.instances))
	for k := range c.factories {
		out = append(out, k)
	}
	for k := range c.instances {
		if _, already := c.factories[k]; !already {
			out = append(out, k)
		}
	}
	return out
}

// canonical resolves an alias to its canonical identity.
func (c *Container) canonical(identity Identity) Identity {
	if target, ok := c.aliases[identity]; ok {
		return target
	}
	return identity
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Provide registers a typed factory under T's identity.
//
//	// Instead of: c.Singleton(container.TypeOf[*UserService](), untypedFactory)
//	// Write:      container.Provide(c, func(c *container.Container) (*UserService, error) { ... })
func Provide[T any](c *Container, factory func(c *Container) (T, error)) {
	c.Singleton(TypeOf[T](), func(c *Container) (any, error) {
		return factory(c)
	})
}

// ProvideValue registers a pre-built value under T's identity.
func ProvideValue[T any](c *Container, value T) {
	c.Instance(TypeOf[T](), value)
}

// Resolve resolves T's identity and returns the instance typed as T.
//
//	svc, err := container.Resolve[*UserService](c)
func Resolve[T any](c *Container) (T, error) {
	var zero T
	instance, err := c.Make(TypeOf[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, &WrongTypeError{
			Identity: TypeOf[T](),
			GotType:  reflect.TypeOf(instance).String(),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure. For composition-root
// code where a missing registration is a programming error.
func MustResolve[T any](c *Container) T {
	typed, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return typed
}
