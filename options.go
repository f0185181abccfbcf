package plottools

// Option configures a convention check or the command tree.
type Option func(*options)

// options holds the resolved option values.
type options struct {
	// logger receives diagnostic log messages. May be nil.
	logger Logger

	// strict escalates warning findings to errors.
	strict bool

	// followSymlinks makes the checker descend into symlinked files.
	followSymlinks bool
}

// newOptions returns options with default values.
func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a logger for diagnostic output.
// If not set, logging is disabled.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrict escalates warning findings (orphan and stale figures) to
// errors, so they fail the check.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithFollowSymlinks makes the checker consider symlinked scripts and
// figures. By default symlinks are skipped.
func WithFollowSymlinks() Option {
	return func(o *options) {
		o.followSymlinks = true
	}
}

// Logger is the interface for diagnostic logging.
// Compatible with slog, charmbracelet/log, zap, and other structured
// loggers.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
}

// logDebug logs through an optional logger.
func (o *options) logDebug(msg string, keysAndValues ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, keysAndValues...)
	}
}

func (o *options) logWarn(msg string, keysAndValues ...any) {
	if o.logger != nil {
		o.logger.Warn(msg, keysAndValues...)
	}
}
