package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/arith/log"
	"github.com/ardnew/arith/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	// Refuse to clobber an existing file unless forced.
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	document := map[string]any{ConfigIdentifier: i.flagValues(ctx)}

	enc := yaml.NewEncoder(file, yaml.Indent(defaultConfigIndent))
	defer enc.Close()

	err = enc.EncodeContext(ctx, document)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// flagValues collects the current value of every configurable root flag,
// keyed by flag name.
func (i *Init) flagValues(ctx context.Context) map[string]any {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ktx := kongContextFrom(ctx)

	values := make(map[string]any)

	prefixIgnore := []string{"help", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val := flagConfigValue(ktx.FlagValue(flag))
		if val != nil {
			values[flag.Name] = val
		}
	}

	return values
}

// flagConfigValue converts a flag's runtime value into a form suitable for
// the configuration document, or nil if the value should be omitted.
//
// Zero-length strings and slices are omitted so the generated file only
// pins values kong could not reconstruct on its own. Booleans are always
// written, false included, because a bare flag name carries no value to
// omit.
func flagConfigValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil

	case bool:
		return v

	case string:
		if v == "" {
			return nil
		}

		return v

	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case []int:
		if len(v) == 0 {
			return nil
		}

		return v

	case []float64:
		if len(v) == 0 {
			return nil
		}

		return v

	default:
		// Custom flag types render through their string form.
		s := fmt.Sprint(v)
		if s == "" {
			return nil
		}

		return s
	}
}
