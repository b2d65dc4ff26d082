package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the registrations for one area of the application.
//
// Every provider must implement at minimum Register().
// Boot() is called after ALL providers have been registered and after the
// container has validated every dependency binding, making it safe to
// resolve other registrations inside Boot().
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
//	func (p *AppServiceProvider) Boot(app *container.Container) {
//	    // safe to resolve anything here
//	}
type ServiceProvider interface {
	// Register records factories and dependency bindings into the container.
	// Do NOT resolve other registrations here — use Boot() for that.
	Register(app *Container)

	// Boot is called after all providers are registered and the container's
	// bindings have been validated.
	Boot(app *Container)
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides a no-op Boot().
// Embed it in your provider and only override what you need.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(app *container.Container) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) {}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders.
//
// Setup is two-phase: providers first record every factory and binding
// (Register), then Boot validates the recorded bindings and runs the
// providers' Boot hooks in registration order. Because no service is
// constructed during the Register phase, providers may be registered in any
// order; a binding that refers to an identity no provider registered fails
// Boot with a *LookupError.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method. Registering the
// same provider instance twice is a no-op.
//
// A provider registered after Boot() is booted immediately, but its
// registrations miss the boot-time CheckBindings pass: a dangling binding
// recorded this late surfaces as a *LookupError on first resolution rather
// than up front. Register every provider before Boot to keep the early
// failure guarantee.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	provider.Register(r.app)
	r.providers = append(r.providers, provider)

	// If already booted, boot this provider immediately.
	if r.booted {
		provider.Boot(r.app)
	}
}

// Boot validates the container's dependency bindings, then calls Boot() on
// all providers in registration order. Must be called after ALL providers
// have been registered; calling it again is a no-op.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	if err := r.app.CheckBindings(); err != nil {
		return err
	}
	r.booted = true
	for _, provider := range r.providers {
		provider.Boot(r.app)
	}
	return nil
}

// Booted returns true if Boot() has completed.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
