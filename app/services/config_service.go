package services

import (
	"github.com/prince981620/dependency-injection/framework/config"
)

// ConfigKeyLogger is the configuration key that selects the logger driver.
const ConfigKeyLogger = "loggerConfig"

// ConfigService exposes application configuration values by key.
type ConfigService struct {
	cfg *config.Config
}

func NewConfigService(cfg *config.Config) *ConfigService {
	return &ConfigService{cfg: cfg}
}

// GetEnvConfig returns the configured value for a known key. An unknown
// key fails with a *ConfigurationError naming it.
func (s *ConfigService) GetEnvConfig(key string) (string, error) {
	switch key {
	case ConfigKeyLogger:
		return s.cfg.Logger.Driver, nil
	default:
		return "", &ConfigurationError{Value: key}
	}
}
