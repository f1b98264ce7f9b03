package logger

// Emission describes one permitted call before it reaches the sink.
type Emission struct {
	Level Level
	Label string
	// Args are the assembled leading arguments (prefix, label token and
	// tag); the caller's payload is appended when the sink is invoked.
	Args []any
}

// HookResult is either Rewrite or Replace.
type HookResult interface {
	hookResult()
}

// Rewrite substitutes the assembled arguments. The default sink is still
// used and the caller's payload is appended after Args.
type Rewrite struct {
	Args []any
}

// Replace substitutes the sink. The assembled arguments are discarded and
// Sink receives the caller's payload verbatim.
type Replace struct {
	Sink Sink
}

func (Rewrite) hookResult() {}
func (Replace) hookResult() {}

// normalize dereferences pointer results so callers switch on values only.
func normalize(r HookResult) HookResult {
	switch v := r.(type) {
	case *Rewrite:
		if v == nil {
			return nil
		}
		return *v
	case *Replace:
		if v == nil {
			return nil
		}
		return *v
	}
	return r
}

// Hook inspects a permitted emission. Returning nil keeps the assembled
// arguments and the default sink. A panicking hook panics the caller.
type Hook func(Emission) HookResult

// ChainHooks runs hooks in order. Each hook sees the arguments produced by
// the previous Rewrite; the first Replace ends the chain.
func ChainHooks(hooks ...Hook) Hook {
	return func(e Emission) HookResult {
		var rewritten bool
		for _, h := range hooks {
			if h == nil {
				continue
			}
			switch r := normalize(h(e)).(type) {
			case Replace:
				if r.Sink == nil {
					continue
				}
				return r
			case Rewrite:
				e.Args = r.Args
				rewritten = true
			}
		}
		if !rewritten {
			return nil
		}
		return Rewrite{Args: e.Args}
	}
}
