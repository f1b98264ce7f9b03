package logger

import (
	"runtime"
	"sync"
)

// Factory builds Loggers that share one configuration provider, one console
// and one sub-logger registry.
type Factory struct {
	provider Provider
	console  *Console
	color    ColorMode
	colorize bool

	// subs caches sub-loggers by composed label.
	subs sync.Map // map[string]*Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithConsole sets the output functions. Default: DefaultConsole().
func WithConsole(c *Console) Option {
	return func(f *Factory) { f.console = c }
}

// WithColor sets whether level tags are colorized. Default: ColorAuto.
func WithColor(m ColorMode) Option {
	return func(f *Factory) { f.color = m }
}

// Build returns a Factory whose Loggers consult provider on every call.
// A nil provider uses DefaultConfig.
func Build(provider Provider, opts ...Option) *Factory {
	f := &Factory{provider: provider}
	for _, o := range opts {
		o(f)
	}
	if f.console == nil {
		f.console = DefaultConsole()
	}
	f.colorize = f.color.enabled(f.console.stdout)
	return f
}

var defaultFactory = sync.OnceValue(func() *Factory {
	return Build(nil)
})

// Default returns the process-wide Factory built with no provider, writing
// to stdout and stderr.
func Default() *Factory {
	return defaultFactory()
}

// New returns a Logger bound to label. An empty label omits the label token.
func (f *Factory) New(label string) *Logger {
	return &Logger{label: label, factory: f}
}

// ForCaller returns a Logger labelled with the caller's source file,
// relative to the working directory.
func (f *Factory) ForCaller() *Logger {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return f.New("")
	}
	return f.New(ModuleLabel(file))
}

func (f *Factory) decorator(l Level) ColorFunc {
	if !f.colorize {
		return Plain
	}
	return ColorFor(l)
}

// bind resolves the sink for one call at level with label. Configuration is
// resolved here, at call time, exactly once.
func (f *Factory) bind(level Level, label string) Sink {
	cfg := Resolve(f.provider)
	if !ShouldEmit(cfg.LogLevel, level) {
		return noop
	}

	args := make([]any, 0, 3)
	if cfg.Prefix != nil {
		if p := cfg.Prefix(); p != "" {
			args = append(args, p)
		}
	}
	if label != "" {
		args = append(args, "["+label+"]")
	}
	args = append(args, f.decorator(level)(Tag(level)))

	if cfg.Hook != nil {
		switch r := normalize(cfg.Hook(Emission{Level: level, Label: label, Args: args})).(type) {
		case Replace:
			if r.Sink != nil {
				return r.Sink
			}
		case Rewrite:
			args = r.Args
		}
	}
	return bindArgs(f.console.sinkFor(level), args)
}

// bindArgs returns out with args fixed in front of the caller's payload.
func bindArgs(out Sink, args []any) Sink {
	return func(payload ...any) {
		all := make([]any, 0, len(args)+len(payload))
		all = append(all, args...)
		all = append(all, payload...)
		out(all...)
	}
}

// Logger emits labelled, leveled messages. The label never changes after
// construction. Loggers are safe for concurrent use when their provider is.
type Logger struct {
	label   string
	factory *Factory
}

// Label returns the logger's label.
func (l *Logger) Label() string {
	return l.label
}

// Sink returns the sink for one call at level, with the label and tag
// already bound. The configuration is read when Sink is called.
func (l *Logger) Sink(level Level) Sink {
	return l.factory.bind(level, l.label)
}

// Debug logs a debug message.
func (l *Logger) Debug(args ...any) { l.Sink(LevelDebug)(args...) }

// D is short for Debug.
func (l *Logger) D(args ...any) { l.Debug(args...) }

// Info logs an informational message.
func (l *Logger) Info(args ...any) { l.Sink(LevelInfo)(args...) }

// I is short for Info.
func (l *Logger) I(args ...any) { l.Info(args...) }

// Warn logs a warning.
func (l *Logger) Warn(args ...any) { l.Sink(LevelWarn)(args...) }

// W is short for Warn.
func (l *Logger) W(args ...any) { l.Warn(args...) }

// Error logs an error message.
func (l *Logger) Error(args ...any) { l.Sink(LevelError)(args...) }

// E is short for Error.
func (l *Logger) E(args ...any) { l.Error(args...) }

// Success logs a success message. It is filtered and routed as info.
func (l *Logger) Success(args ...any) { l.Sink(LevelSuccess)(args...) }

// S is short for Success.
func (l *Logger) S(args ...any) { l.Success(args...) }

// Fail logs a failure. It is filtered and routed as error.
func (l *Logger) Fail(args ...any) { l.Sink(LevelFail)(args...) }

// F is short for Fail.
func (l *Logger) F(args ...any) { l.Fail(args...) }

// Raw writes args through the console's generic output function. It is
// never filtered, tagged, labelled or hooked.
func (l *Logger) Raw(args ...any) {
	if out := l.factory.console.Log; out != nil {
		out(args...)
	}
}

// R is short for Raw.
func (l *Logger) R(args ...any) { l.Raw(args...) }

// Sub returns the logger labelled l.Label()+suffix. The separator, if any,
// belongs in suffix. Repeated calls with the same composed label on loggers
// from the same Factory return the same *Logger.
func (l *Logger) Sub(suffix string) *Logger {
	key := l.label + suffix
	if sub, ok := l.factory.subs.Load(key); ok {
		return sub.(*Logger)
	}
	sub, _ := l.factory.subs.LoadOrStore(key, &Logger{label: key, factory: l.factory})
	return sub.(*Logger)
}
