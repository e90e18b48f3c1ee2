package llogs

// Driver owns the log sink installed as the process-wide slog default.
type Driver interface {
	Close() bool
}
