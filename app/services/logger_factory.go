package services

// Logger driver names recognized by the factory.
const (
	DriverConsole = "console"
	DriverFile    = "file"
	DriverCloud   = "cloud"
)

// LoggerFactory selects the Logger implementation named by configuration.
//
// Its dependencies are attached by the container's dependency bindings; the
// selection itself happens once, on the first GetLogger call, and the
// chosen logger is reused forever after.
type LoggerFactory struct {
	config  *ConfigService
	console *ConsoleLogger
	file    *FileLogger
	cloud   *CloudLogger

	selected Logger
}

// ── setters (invoked by container bindings) ──────────────────────────────────

func (f *LoggerFactory) SetConfigService(s *ConfigService) { f.config = s }
func (f *LoggerFactory) SetConsoleLogger(l *ConsoleLogger) { f.console = l }
func (f *LoggerFactory) SetFileLogger(l *FileLogger)       { f.file = l }
func (f *LoggerFactory) SetCloudLogger(l *CloudLogger)     { f.cloud = l }

// GetLogger returns the logger named by the "loggerConfig" configuration
// value. An unrecognized value fails with a *ConfigurationError — there is
// no fallback driver.
func (f *LoggerFactory) GetLogger() (Logger, error) {
	if f.selected != nil {
		return f.selected, nil
	}

	driver, err := f.config.GetEnvConfig(ConfigKeyLogger)
	if err != nil {
		return nil, err
	}

	switch driver {
	case DriverConsole:
		f.selected = f.console
	case DriverFile:
		f.selected = f.file
	case DriverCloud:
		f.selected = f.cloud
	default:
		return nil, &ConfigurationError{Value: driver}
	}

	return f.selected, nil
}
