package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"required|in:debug,info,warn,error,dpanic,panic,fatal"`
	// Format is the log encoding (json, console).
	Format string `mapstructure:"format" default:"console" validate:"in:json,console"`
}
