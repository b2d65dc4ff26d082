package app

import (
	"io"

	appproviders "github.com/prince981620/dependency-injection/app/providers"
	"github.com/prince981620/dependency-injection/app/services"
	"github.com/prince981620/dependency-injection/framework/container"
	"github.com/prince981620/dependency-injection/framework/providers"
)

// Application is the top-level application container.
// It embeds the service Container and the ProviderRegistry so the
// composition root can register and resolve directly on it.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers its service providers.
// Nothing is constructed yet; Boot (or Run) completes the setup.
func New(envFiles ...string) *Application {
	return NewWithOutput(nil, envFiles...)
}

// NewWithOutput is New with the logger output redirected, for tests.
// A nil writer means os.Stdout.
func NewWithOutput(out io.Writer, envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&appproviders.AppServiceProvider{Out: out})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot validates the wiring and runs the providers' Boot phase.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Run boots the application (if needed), resolves the Main service and
// runs it. Any lookup or configuration failure propagates to the caller.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}

	main, err := container.Resolve[*services.Main](a.Container)
	if err != nil {
		return err
	}

	main.Run()
	return nil
}
