package config

const (
	defaultLastnameThreshold = 0.85
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Matching: Matching{
			LastnameThreshold: defaultLastnameThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Report: Report{
			HTML:    false,
			Summary: false,
		},
	}
}
