package providers

import (
	"io"
	"os"

	"github.com/prince981620/dependency-injection/app/services"
	"github.com/prince981620/dependency-injection/framework/config"
	"github.com/prince981620/dependency-injection/framework/container"
)

// ── AppServiceProvider ────────────────────────────────────────────────────────

// AppServiceProvider registers the demo services and their dependency
// bindings. Registration records factories only; nothing is constructed
// until the services are first resolved, after Boot.
//
// Registered identities:
//   - *services.ConfigService
//   - *services.ConsoleLogger, *services.FileLogger, *services.CloudLogger
//   - *services.LoggerFactory
//   - services.Logger (delegates to the factory's configured choice)
//   - *services.UserService
//   - *services.Main
type AppServiceProvider struct {
	container.BaseProvider

	// Out receives all logger output; defaults to os.Stdout.
	Out io.Writer
}

func (p *AppServiceProvider) Register(app *container.Container) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	container.Provide(app, func(c *container.Container) (*services.ConfigService, error) {
		cfg, err := container.Resolve[*config.Config](c)
		if err != nil {
			return nil, err
		}
		return services.NewConfigService(cfg), nil
	})

	container.Provide(app, func(c *container.Container) (*services.ConsoleLogger, error) {
		return services.NewConsoleLogger(out), nil
	})
	container.Provide(app, func(c *container.Container) (*services.FileLogger, error) {
		return services.NewFileLogger(out), nil
	})
	container.Provide(app, func(c *container.Container) (*services.CloudLogger, error) {
		return services.NewCloudLogger(out), nil
	})

	container.Provide(app, func(c *container.Container) (*services.LoggerFactory, error) {
		return &services.LoggerFactory{}, nil
	})

	// The Logger identity resolves to whatever the factory selects from
	// configuration. Consumers depend on the interface, not on a driver.
	container.Provide(app, func(c *container.Container) (services.Logger, error) {
		factory, err := container.Resolve[*services.LoggerFactory](c)
		if err != nil {
			return nil, err
		}
		return factory.GetLogger()
	})

	container.Provide(app, func(c *container.Container) (*services.UserService, error) {
		return &services.UserService{}, nil
	})
	container.Provide(app, func(c *container.Container) (*services.Main, error) {
		return &services.Main{}, nil
	})

	// Dependency bindings: each setter runs once, right after its owner is
	// constructed.
	container.Bind(app, (*services.LoggerFactory).SetConfigService)
	container.Bind(app, (*services.LoggerFactory).SetConsoleLogger)
	container.Bind(app, (*services.LoggerFactory).SetFileLogger)
	container.Bind(app, (*services.LoggerFactory).SetCloudLogger)
	container.Bind(app, (*services.UserService).SetLogger)
	container.Bind(app, (*services.Main).SetUserService)
}
