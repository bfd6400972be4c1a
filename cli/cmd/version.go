package cmd

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/ardnew/arith/pkg"
)

// Version prints the interpreter version.
type Version struct {
	Verbose bool `help:"Include platform and toolchain details" short:"V"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	version := strings.TrimSpace(pkg.Version)

	if !v.Verbose {
		_, err = fmt.Println(pkg.Name + " " + version)

		return err
	}

	_, err = fmt.Printf("%s %s %s/%s (%s)\n",
		pkg.Name, version, runtime.GOOS, runtime.GOARCH, runtime.Version())

	return err
}
