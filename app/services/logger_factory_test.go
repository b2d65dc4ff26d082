package services_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prince981620/dependency-injection/app/services"
)

func newFactory(driver string, out *bytes.Buffer) *services.LoggerFactory {
	factory := &services.LoggerFactory{}
	factory.SetConfigService(services.NewConfigService(newConfig(driver)))
	factory.SetConsoleLogger(services.NewConsoleLogger(out))
	factory.SetFileLogger(services.NewFileLogger(out))
	factory.SetCloudLogger(services.NewCloudLogger(out))
	return factory
}

func TestLoggerFactory_SelectsDriverFromConfig(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{services.DriverConsole, "[console]: ping\n"},
		{services.DriverFile, "[file]: ping\n"},
		{services.DriverCloud, "[cloud]: ping\n"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			var buf bytes.Buffer
			factory := newFactory(tt.driver, &buf)

			logger, err := factory.GetLogger()
			require.NoError(t, err)

			logger.Log("ping")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLoggerFactory_SelectionHappensOnce(t *testing.T) {
	var buf bytes.Buffer
	cfg := newConfig(services.DriverConsole)
	factory := &services.LoggerFactory{}
	factory.SetConfigService(services.NewConfigService(cfg))
	factory.SetConsoleLogger(services.NewConsoleLogger(&buf))
	factory.SetFileLogger(services.NewFileLogger(&buf))
	factory.SetCloudLogger(services.NewCloudLogger(&buf))

	first, err := factory.GetLogger()
	require.NoError(t, err)

	// Even if the configuration changes afterwards, the selection is fixed.
	cfg.Logger.Driver = services.DriverFile

	second, err := factory.GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoggerFactory_UnrecognizedDriverFails(t *testing.T) {
	var buf bytes.Buffer
	factory := newFactory("syslog", &buf)

	_, err := factory.GetLogger()
	require.Error(t, err)

	var cfgErr *services.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "syslog", cfgErr.Value)
}
