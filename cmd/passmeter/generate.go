package main

import (
	"fmt"

	"github.com/fernandezvara/passmeter"
)

// generateCmd handles the generate command.
func (c *cli) generateCmd(args []string) int {
	fs := c.flagSet("generate")
	length := fs.IntP("length", "l", 16, fmt.Sprintf("Password length (minimum %d)", passmeter.MinGenerateLength))
	count := fs.IntP("count", "n", 1, "Number of passwords to generate")

	if code, done := c.parse(fs, args); done {
		return code
	}
	if *count < 1 {
		fmt.Fprintln(c.stderr, "Error: --count must be at least 1")
		return 1
	}

	e := passmeter.NewEvaluator()
	for i := 0; i < *count; i++ {
		pwd, err := e.Generate(*length)
		if err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(c.stdout, pwd)
	}
	return 0
}
