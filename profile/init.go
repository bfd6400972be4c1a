package profile

// Config functions return all supported pprof configuration parameters.
type Config func() (mode, dir string, quiet bool)

// Start initializes the profiler and returns an interface for stopping it.
//
// Mode selects the profiler to run, and dir names the directory where
// profiling data will be written.
//
// If the pprof build tag or the configured mode is unset, Start returns a
// no-op implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	if c == nil {
		return ignore{}
	}

	mode, dir, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, dir, quiet)
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, dir, quiet := c()

		return func() (string, string, bool) {
			return mode, dir, quiet
		}
	}
}

// WithDir returns a functional option for setting a profiler's output
// directory.
func WithDir(dir string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) {
			return mode, dir, quiet
		}
	}
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, dir, _ := c()

		return func() (string, string, bool) {
			return mode, dir, quiet
		}
	}
}

type ignore struct{}

func (ignore) Stop() {}
