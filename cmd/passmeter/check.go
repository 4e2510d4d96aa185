package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fernandezvara/passmeter"
	"github.com/fernandezvara/passmeter/internal/meter"
)

// checkCmd handles the check command.
func (c *cli) checkCmd(args []string) int {
	fs := c.flagSet("check")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	commonFile := fs.String("common-passwords", "", "Replace the built-in common password list")
	minStrength := fs.String("min", "", "Exit with status 2 if weaker than this strength (e.g. strong)")
	noColor := fs.Bool("no-color", false, "Disable coloured output")

	fs.Usage = func() {
		fmt.Fprintln(c.stderr, "Usage: passmeter check [options] [password]")
		fmt.Fprintln(c.stderr, "\nWithout a password argument the first line of stdin is scored.")
		fmt.Fprintln(c.stderr, "\nOptions:")
		fs.PrintDefaults()
	}

	if code, done := c.parse(fs, args); done {
		return code
	}

	var threshold passmeter.Strength
	if *minStrength != "" {
		if err := threshold.UnmarshalText([]byte(*minStrength)); err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return 1
		}
	}

	password, err := c.readPassword(fs.Args())
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}

	evaluator, err := loadEvaluator(*commonFile)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	result := evaluator.Evaluate(password)

	if *asJSON {
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		meter.NewTerminal(c.stdout, useColor(*noColor)).Render(result)
	}

	if *minStrength != "" && result.Strength < threshold {
		return 2
	}
	return 0
}

// readPassword takes the password from the first argument, or from the
// first line of stdin.
func (c *cli) readPassword(args []string) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected at most one password, got %d arguments", len(args))
	}

	reader := bufio.NewReader(c.stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimRight(line, "\r\n"), nil
}
