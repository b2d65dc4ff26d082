package container_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prince981620/dependency-injection/framework/container"
)

// ── stub services ─────────────────────────────────────────────────────────────

type greeter interface{ Greet() string }

type englishGreeter struct{ greeting string }

func (g *englishGreeter) Greet() string { return g.greeting }

type counterService struct{ builds int }

// ── Instance / Make ───────────────────────────────────────────────────────────

func TestMake_InstanceReferentiallyStable(t *testing.T) {
	c := container.New()
	svc := &englishGreeter{greeting: "hello"}
	container.ProvideValue(c, svc)

	for i := 0; i < 3; i++ {
		got, err := container.Resolve[*englishGreeter](c)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != svc {
			t.Fatal("Resolve should return the same instance on every call")
		}
	}
}

func TestMake_UnregisteredFailsWithLookupError(t *testing.T) {
	c := container.New()

	_, err := c.Make(container.TypeOf[*englishGreeter]())
	if err == nil {
		t.Fatal("Make on an unregistered identity should fail, not return a default")
	}

	var lookupErr *container.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("got %T, want *container.LookupError", err)
	}
	if !strings.Contains(err.Error(), "englishGreeter") {
		t.Errorf("error should name the identity: %q", err.Error())
	}
}

func TestInstance_OverwriteReplacesResolvedValue(t *testing.T) {
	c := container.New()
	first := &englishGreeter{greeting: "first"}
	second := &englishGreeter{greeting: "second"}

	container.ProvideValue(c, first)
	container.ProvideValue(c, second)

	got, err := container.Resolve[*englishGreeter](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != second {
		t.Error("Resolve should return the most recently registered instance")
	}
	// The held reference to the first instance stays usable.
	if first.Greet() != "first" {
		t.Error("overwritten instance should remain valid for existing holders")
	}
}

// ── Singleton ─────────────────────────────────────────────────────────────────

func TestSingleton_OverwriteReplacesResolvedValue(t *testing.T) {
	c := container.New()
	container.Provide(c, func(c *container.Container) (*englishGreeter, error) {
		return &englishGreeter{greeting: "first"}, nil
	})

	first, err := container.Resolve[*englishGreeter](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// Re-registering drops the cached instance and installs the new factory.
	container.Provide(c, func(c *container.Container) (*englishGreeter, error) {
		return &englishGreeter{greeting: "second"}, nil
	})

	if c.Resolved(container.TypeOf[*englishGreeter]()) {
		t.Error("overwriting a registration should drop the cached instance")
	}

	second, err := container.Resolve[*englishGreeter](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if second == first {
		t.Error("Resolve should return an instance from the new factory")
	}
	if second.Greet() != "second" {
		t.Errorf("greeting: got %q, want 'second'", second.Greet())
	}
	// The held reference to the first instance stays usable.
	if first.Greet() != "first" {
		t.Error("overwritten instance should remain valid for existing holders")
	}
}

func TestSingleton_LazyAndConstructedOnce(t *testing.T) {
	c := container.New()
	builds := 0
	container.Provide(c, func(c *container.Container) (*counterService, error) {
		builds++
		return &counterService{builds: builds}, nil
	})

	if builds != 0 {
		t.Fatal("factory should not run at registration time")
	}
	if c.Resolved(container.TypeOf[*counterService]()) {
		t.Fatal("Resolved() should be false before first Make")
	}

	first, err := container.Resolve[*counterService](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := container.Resolve[*counterService](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if builds != 1 {
		t.Errorf("factory ran %d times, want 1", builds)
	}
	if first != second {
		t.Error("both resolutions should return the same singleton")
	}
	if !c.Resolved(container.TypeOf[*counterService]()) {
		t.Error("Resolved() should be true after first Make")
	}
}

func TestSingleton_FactoryErrorPropagatesAndCachesNothing(t *testing.T) {
	c := container.New()
	boom := errors.New("boom")
	container.Provide(c, func(c *container.Container) (*counterService, error) {
		return nil, boom
	})

	_, err := container.Resolve[*counterService](c)
	if !errors.Is(err, boom) {
		t.Fatalf("Resolve error: got %v, want wrapped 'boom'", err)
	}
	if c.Resolved(container.TypeOf[*counterService]()) {
		t.Error("a failed construction must not cache an instance")
	}
}

// ── Alias ─────────────────────────────────────────────────────────────────────

func TestAlias_InterfaceIdentityResolvesConcrete(t *testing.T) {
	c := container.New()
	svc := &englishGreeter{greeting: "hi"}
	container.ProvideValue(c, svc)
	c.Alias(container.TypeOf[*englishGreeter](), container.TypeOf[greeter]())

	got, err := container.Resolve[greeter](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != greeter(svc) {
		t.Error("alias should resolve to the canonical registration")
	}
}

func TestAlias_SelfAliasPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("aliasing an identity to itself should panic")
		}
	}()
	container.New().Alias(container.TypeOf[greeter](), container.TypeOf[greeter]())
}

// ── Generic helpers ───────────────────────────────────────────────────────────

func TestResolve_WrongTypeFails(t *testing.T) {
	c := container.New()
	// Store a value of the wrong dynamic type under the greeter identity.
	c.Instance(container.TypeOf[greeter](), "not a greeter")

	_, err := container.Resolve[greeter](c)
	var wrongType *container.WrongTypeError
	if !errors.As(err, &wrongType) {
		t.Fatalf("got %T, want *container.WrongTypeError", err)
	}
	if wrongType.GotType != "string" {
		t.Errorf("GotType: got %q, want 'string'", wrongType.GotType)
	}
}

func TestMustResolve_PanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustResolve should panic for an unregistered identity")
		}
	}()
	container.MustResolve[*englishGreeter](container.New())
}

func TestNew_ContainerResolvesItself(t *testing.T) {
	c := container.New()
	got, err := container.Resolve[*container.Container](c)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != c {
		t.Error("the container should resolve itself")
	}
}

// ── Introspection & teardown ──────────────────────────────────────────────────

func TestBound_Resolved_Forget(t *testing.T) {
	c := container.New()
	identity := container.TypeOf[*counterService]()

	if c.Bound(identity) {
		t.Error("Bound() should be false before registration")
	}

	container.Provide(c, func(c *container.Container) (*counterService, error) {
		return &counterService{}, nil
	})

	if !c.Bound(identity) {
		t.Error("Bound() should be true after registration")
	}
	if c.Resolved(identity) {
		t.Error("Resolved() should be false before first Make")
	}

	c.Forget(identity)
	if c.Bound(identity) {
		t.Error("Bound() should be false after Forget")
	}
}

func TestFlush_KeepsSelfRegistration(t *testing.T) {
	c := container.New()
	container.ProvideValue(c, &englishGreeter{})

	c.Flush()

	if c.Bound(container.TypeOf[*englishGreeter]()) {
		t.Error("Flush should drop all registrations")
	}
	if !c.Bound(container.TypeOf[*container.Container]()) {
		t.Error("Flush should keep the container's self-registration")
	}
}

func TestIdentities_ListsRegistrations(t *testing.T) {
	c := container.New()
	container.ProvideValue(c, &englishGreeter{})
	container.Provide(c, func(c *container.Container) (*counterService, error) {
		return &counterService{}, nil
	})

	ids := c.Identities()
	// self + instance + factory
	if len(ids) != 3 {
		t.Errorf("Identities(): got %d entries, want 3", len(ids))
	}
}
