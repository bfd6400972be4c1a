package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/arith/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"text,json"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start applies the fully parsed logger configuration, including fields
// like TimeLayout and Caller that don't use TextUnmarshaler. The returned
// function logs final process statistics and is intended to be deferred.
func (f *logConfig) start(ctx context.Context) func() {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	began := time.Now()

	return func() {
		log.TraceContext(ctx, "shutdown",
			slog.Duration("uptime", time.Since(began)),
		)
	}
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
//
// While logFormat and logLevel types implement encoding.TextUnmarshaler to
// configure the logger as flags are encountered during parsing, boolean
// flags like Pretty don't go through that interface. This pre-scan ensures
// all logger flags are applied early.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		name, negated := cutNegation(name)

		// Non-boolean flags consume the next argument when the value was
		// not attached with '='.
		next := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" &&
				!strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i]
			}

			return value
		}

		switch name {
		case "--log-level":
			if !negated {
				_ = f.Level.UnmarshalText([]byte(next()))
			}

		case "--log-format":
			if !negated {
				_ = f.Format.UnmarshalText([]byte(next()))
			}

		case "--log-pretty":
			if v, ok := boolArg(value, assigned, negated); ok {
				f.Pretty = v

				log.Config(log.WithPretty(v))
			}

		case "--log-caller":
			if v, ok := boolArg(value, assigned, negated); ok {
				f.Caller = v

				log.Config(log.WithCaller(v))
			}
		}
	}
}

// cutNegation strips kong's negation prefix, returning the positive flag
// name and whether the flag was negated.
func cutNegation(name string) (string, bool) {
	if flag, ok := strings.CutPrefix(name, "--no-"); ok {
		return "--" + flag, true
	}

	return name, false
}

// boolArg resolves the effective value of a boolean flag: a bare flag means
// true, a bare negated flag means false, and an attached value is parsed
// and inverted when negated. Unparseable values are reported as not ok.
func boolArg(value string, assigned, negated bool) (effective, ok bool) {
	if !assigned {
		return !negated, true
	}

	v, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}

	return v != negated, true
}
