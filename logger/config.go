package logger

// Config defines the per-emission configuration returned by a Provider.
// Zero fields are "not set" and keep their defaults when resolved.
type Config struct {
	// LogLevel is the most verbose level emitted. LevelNone silences all
	// filtered methods; an unrecognized level permits everything.
	// Default: LevelDebug (everything is emitted)
	LogLevel Level
	// Hook may rewrite the assembled arguments or replace the sink.
	// Default: nil (no hook)
	Hook Hook
	// Prefix returns a string emitted before the label and tag. An empty
	// result is omitted.
	// Default: nil (no prefix)
	Prefix func() string
}

// Provider returns the configuration for one emission. It is called exactly
// once per filtered call, at call time, so it may return a different Config
// on every call.
type Provider func() Config

// defaultConfig is never mutated; Resolve returns copies.
var defaultConfig = Config{LogLevel: LevelDebug}

// DefaultConfig returns the configuration used when no provider is given.
func DefaultConfig() Config {
	return defaultConfig
}

// Resolve returns the configuration for one emission: the defaults, with
// every field the provider set taking precedence. A nil provider yields the
// defaults. The provider is invoked exactly once.
func Resolve(provider Provider) Config {
	cfg := defaultConfig
	if provider == nil {
		return cfg
	}
	return cfg.Merge(provider())
}

// Merge overlays the non-zero fields of o on c and returns the result.
func (c Config) Merge(o Config) Config {
	if o.LogLevel != 0 {
		c.LogLevel = o.LogLevel
	}
	if o.Hook != nil {
		c.Hook = o.Hook
	}
	if o.Prefix != nil {
		c.Prefix = o.Prefix
	}
	return c
}
