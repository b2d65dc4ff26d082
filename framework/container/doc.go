// Package container provides a type-identity keyed service registry with
// singleton resolution and setter-based dependency wiring.
//
// # Overview
//
// The container manages the instantiation and lifecycle of an application's
// services. Each service is registered under its type identity (a
// reflect.Type token obtained via TypeOf) and resolved as a process-wide
// singleton: for a given identity, every resolution returns the same
// instance. Dependencies between services are declared as bindings; the
// container invokes each binding's setter exactly once, right after the
// owning service is constructed.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()        — validates bindings; safe to resolve after
//  4. Resolve and run
//
// # Registration
//
//	// Singleton — constructed once, on first resolution
//	container.Provide(c, func(c *container.Container) (*UserService, error) {
//	    return &UserService{}, nil
//	})
//
//	// Pre-built value
//	container.ProvideValue(c, cfg)
//
//	// Alias — satisfy an interface identity with a concrete registration
//	c.Alias(container.TypeOf[*ConsoleLogger](), container.TypeOf[Logger]())
//
// Because registration records a factory without constructing anything,
// services may be registered in any order. Construction happens lazily on
// first resolution, after every provider has had its say.
//
// # Resolving
//
//	// Untyped
//	raw, err := c.Make(container.TypeOf[*UserService]())
//
//	// Generic (preferred — no type assertion required)
//	svc, err := container.Resolve[*UserService](c)
//
//	// Composition root, where a miss is a programming error
//	svc := container.MustResolve[*UserService](c)
//
// Resolving an identity nothing registered fails with *LookupError; the
// container never substitutes a default value.
//
// # Dependency Bindings
//
//	// "UserService needs a Logger, attached via SetLogger"
//	container.Bind(c, (*UserService).SetLogger)
//
//	// Long form
//	c.When(container.TypeOf[*UserService]()).
//	    Needs(container.TypeOf[Logger]()).
//	    Set(func(owner, dep any) { owner.(*UserService).SetLogger(dep.(Logger)) })
//
// A binding's setter runs exactly once per owner instance, so repeated
// reads of the owner's field observe the same dependency forever. Boot
// verifies up front that every binding refers to registered identities and
// fails with *LookupError otherwise.
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    container.Provide(app, func(c *container.Container) (*UserService, error) {
//	        return &UserService{}, nil
//	    })
//	    container.Bind(app, (*UserService).SetLogger)
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	if err := registry.Boot(); err != nil { ... }
//
// # Scope
//
// Only singleton lifetimes are supported: no transient or scoped services,
// no child containers, and no circular-dependency detection — a binding
// cycle between factories is a programming error.
package container
