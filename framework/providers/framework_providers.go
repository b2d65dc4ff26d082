package providers

import (
	"github.com/prince981620/dependency-injection/framework/config"
	"github.com/prince981620/dependency-injection/framework/container"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from the
// environment (plus an optional .env file) and registers it into the
// container under the *config.Config identity.
//
// Registered identities:
//   - *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	container.Provide(app, func(c *container.Container) (*config.Config, error) {
		return config.Load(envFiles...), nil
	})
}
