package main

import (
	"fmt"
	"os"

	"github.com/fernandezvara/passmeter"
)

// loadEvaluator returns the default evaluator, or one built from the
// common password list at path.
func loadEvaluator(path string) (*passmeter.Evaluator, error) {
	if path == "" {
		return passmeter.NewEvaluator(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading common passwords: %w", err)
	}
	return passmeter.NewEvaluatorWithDict(string(data)), nil
}
