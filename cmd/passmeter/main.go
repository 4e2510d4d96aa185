// Package main provides the passmeter command line tool.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(newCLI(os.Stdin, os.Stdout, os.Stderr).run(os.Args))
}

// cli carries the process streams so commands can be tested.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{stdin: stdin, stdout: stdout, stderr: stderr}
}

// run executes the CLI and returns an exit code.
func (c *cli) run(args []string) int {
	if len(args) < 2 {
		printUsage(c.stderr)
		return 1
	}

	switch args[1] {
	case "serve":
		return c.serveCmd(args[2:])
	case "check":
		return c.checkCmd(args[2:])
	case "watch":
		return c.watchCmd(args[2:])
	case "generate":
		return c.generateCmd(args[2:])
	case "version":
		return c.versionCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(c.stdout)
		return 0
	default:
		fmt.Fprintf(c.stderr, "Unknown command: %s\n", args[1])
		fmt.Fprintln(c.stderr, "Run 'passmeter help' for usage.")
		return 1
	}
}
