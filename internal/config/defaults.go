package config

const (
	defaultTimeoutSeconds = 10
	defaultOutputFormat   = "table"
	defaultOutputColor    = "auto"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Daemon: Daemon{
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
