package ports

// Logger defines the logging interface used across the application.
//
//go:generate mockgen -destination=mocks/logger_mock.go -package=mocks -source=logger.go
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error.
	Error(err error)
}
