package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/pflag"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

// versionCmd handles the version command.
func (c *cli) versionCmd(args []string) int {
	fs := c.flagSet("version")
	short := fs.Bool("short", false, "Show only version number")

	if code, done := c.parse(fs, args); done {
		return code
	}

	if *short {
		fmt.Fprintln(c.stdout, version)
		return 0
	}

	fmt.Fprintf(c.stdout, "passmeter version %s\n", version)
	fmt.Fprintf(c.stdout, "  Commit:     %s\n", commit)
	fmt.Fprintf(c.stdout, "  Built:      %s\n", buildDate)
	fmt.Fprintf(c.stdout, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(c.stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return 0
}

// flagSet returns a flag set that reports errors instead of exiting.
func (c *cli) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// parse handles -h/--help and parse errors. done reports whether the
// command should return code immediately.
func (c *cli) parse(fs *pflag.FlagSet, args []string) (code int, done bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0, true
		}
		return 1, true
	}
	return 0, false
}
