package container

// Setter attaches a resolved dependency to an owner instance.
type Setter func(owner, dep any)

// dependencyBinding records "owner needs dep, attached via set".
// fired guarantees the setter runs exactly once per owner instance;
// replacing the owner's registration re-arms it (see resetBindings).
type dependencyBinding struct {
	owner Identity
	dep   Identity
	set   Setter
	fired bool
}

// ── Fluent binding API ────────────────────────────────────────────────────────

// BindingBuilder implements the fluent dependency binding API.
//
//	c.When(container.TypeOf[*UserService]()).
//	    Needs(container.TypeOf[Logger]()).
//	    Set(func(owner, dep any) { owner.(*UserService).SetLogger(dep.(Logger)) })
type BindingBuilder struct {
	container *Container
	owner     Identity
	needs     Identity
}

// When starts a dependency binding chain for an owner identity.
func (c *Container) When(owner Identity) *BindingBuilder {
	return &BindingBuilder{container: c, owner: owner}
}

// Needs specifies which identity the owner depends on.
func (b *BindingBuilder) Needs(dep Identity) *BindingBuilder {
	b.needs = dep
	return b
}

// Set records the binding with the setter that attaches the resolved
// dependency to the owner. The setter is invoked exactly once, immediately
// after the owner is constructed; the dependency it receives is the
// singleton the container resolves for the dep identity at that moment,
// and the owner keeps that same instance for its whole lifetime.
func (b *BindingBuilder) Set(set Setter) {
	c := b.container
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = append(c.bindings, &dependencyBinding{
		owner: c.canonical(b.owner),
		dep:   c.canonical(b.needs),
		set:   set,
	})
}

// Bind is the typed shorthand for When/Needs/Set: "O needs D".
//
//	container.Bind(c, (*UserService).SetLogger)
func Bind[O any, D any](c *Container, set func(owner O, dep D)) {
	c.When(TypeOf[O]()).Needs(TypeOf[D]()).Set(func(owner, dep any) {
		set(owner.(O), dep.(D))
	})
}

// ── Wiring ────────────────────────────────────────────────────────────────────

// resetBindings re-arms the bindings owned by an identity so a replacement
// instance gets wired the same way the first one was. Callers must hold c.mu.
func (c *Container) resetBindings(owner Identity) {
	for _, b := range c.bindings {
		if b.owner == owner {
			b.fired = false
		}
	}
}

// wire fires the not-yet-fired bindings owned by the given identity,
// resolving each dependency from the container. A dependency registered as
// a factory is constructed here, on demand. A missing registration fails
// with a *LookupError.
func (c *Container) wire(owner Identity, instance any) error {
	c.mu.RLock()
	pending := make([]*dependencyBinding, 0, len(c.bindings))
	for _, b := range c.bindings {
		if b.owner == owner && !b.fired {
			pending = append(pending, b)
		}
	}
	c.mu.RUnlock()

	for _, b := range pending {
		dep, err := c.Make(b.dep)
		if err != nil {
			return err
		}
		c.mu.Lock()
		b.fired = true
		c.mu.Unlock()
		b.set(instance, dep)
	}

	return nil
}

// CheckBindings verifies that every recorded binding refers to registered
// identities, owner and dependency alike. It reports the first miss as a
// *LookupError, so a wiring mistake surfaces deterministically at boot
// instead of on some later resolution. Called by ProviderRegistry.Boot.
func (c *Container) CheckBindings() error {
	c.mu.RLock()
	bindings := make([]*dependencyBinding, len(c.bindings))
	copy(bindings, c.bindings)
	c.mu.RUnlock()

	for _, b := range bindings {
		if !c.Bound(b.owner) {
			return &LookupError{Identity: b.owner}
		}
		if !c.Bound(b.dep) {
			return &LookupError{Identity: b.dep}
		}
	}

	// Owners registered as pre-built instances have no construction moment,
	// so their bindings are wired here.
	for _, b := range bindings {
		if b.fired {
			continue
		}
		c.mu.RLock()
		instance, ok := c.instances[b.owner]
		c.mu.RUnlock()
		if !ok {
			continue // factory-registered: wired on first Make
		}
		if err := c.wire(b.owner, instance); err != nil {
			return err
		}
	}

	return nil
}
