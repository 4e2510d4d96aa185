package passmeter

import (
	"strings"
	"unicode/utf8"
)

// Suggestion texts that are not tied to a single penalty.
const (
	SuggestLength    = "Use at least 8 characters (12+ recommended)"
	SuggestLower     = "Include lowercase letters (a-z)"
	SuggestUpper     = "Include uppercase letters (A-Z)"
	SuggestDigit     = "Include numbers (0-9)"
	SuggestSpecial   = "Include special characters (!@#$%^&*)"
	SuggestExcellent = "Excellent! Your password is very strong."
	SuggestGood      = "Good password! Consider the suggestions above to make it even stronger."
)

// baselineTips are returned for empty input.
var baselineTips = []string{
	"Use a mix of uppercase and lowercase letters",
	"Include numbers and special characters",
	"Make it at least 12 characters long",
	"Avoid common passwords and dictionary words",
}

// specialChars is the set of characters counted as "special".
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Result is the outcome of evaluating a single password.
type Result struct {
	Strength    Strength `json:"strength"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
	// Penalties lists the rule identifiers that subtracted points, in
	// application order.
	Penalties []string `json:"penalties,omitempty"`
	// Entropy is an informational estimate in bits. It never affects the
	// score.
	Entropy float64 `json:"entropy_bits"`
}

// Evaluator scores passwords against a fixed common-password dictionary.
// An Evaluator is immutable and safe for concurrent use.
type Evaluator struct {
	dict *dictionary
}

var defaultEvaluator = &Evaluator{dict: globalDict}

// NewEvaluator returns an evaluator backed by the embedded dictionary.
func NewEvaluator() *Evaluator {
	return defaultEvaluator
}

// NewEvaluatorWithDict creates an evaluator with custom dictionary data.
// If customDict is empty, uses the embedded dictionary.
// customDict should be a string with one password per line; lines starting
// with '#' are ignored.
func NewEvaluatorWithDict(customDict string) *Evaluator {
	if strings.TrimSpace(customDict) == "" {
		return defaultEvaluator
	}
	return &Evaluator{dict: loadDictionary(customDict)}
}

// DictionarySize returns the number of distinct common passwords known to e.
func (e *Evaluator) DictionarySize() int {
	return e.dict.size()
}

// Evaluate scores password with the embedded dictionary.
func Evaluate(password string) Result {
	return defaultEvaluator.Evaluate(password)
}

// Evaluate scores password. It never fails: any string, including empty
// and non-UTF-8 input, yields a well-formed Result.
func (e *Evaluator) Evaluate(password string) Result {
	if password == "" {
		return Result{
			Strength:    Unrated,
			Score:       0,
			Suggestions: append([]string(nil), baselineTips...),
		}
	}

	var (
		score       int
		suggestions []string
	)

	// --- Length ---
	switch n := utf8.RuneCountInString(password); {
	case n >= 12:
		score += 2
	case n >= 8:
		score++
	default:
		suggestions = append(suggestions, SuggestLength)
	}

	// --- Character classes ---
	hasLower, hasUpper, hasDigit, hasSpecial := charClasses(password)
	for _, c := range []struct {
		present bool
		tip     string
	}{
		{hasLower, SuggestLower},
		{hasUpper, SuggestUpper},
		{hasDigit, SuggestDigit},
		{hasSpecial, SuggestSpecial},
	} {
		if c.present {
			score++
		} else {
			suggestions = append(suggestions, c.tip)
		}
	}

	// --- Penalties ---
	var rules []string
	lower := strings.ToLower(password)
	for _, p := range detectPenalties(password, lower, e.dict) {
		score -= p.Points
		if score < 0 {
			score = 0
		}
		suggestions = append(suggestions, p.Suggestion)
		rules = append(rules, p.Rule)
	}

	switch {
	case score >= 5 && len(suggestions) == 0:
		suggestions = []string{SuggestExcellent}
	case score >= 3 && len(suggestions) <= 1:
		suggestions = append(suggestions, SuggestGood)
	}

	return Result{
		Strength:    classify(score),
		Score:       score,
		Suggestions: suggestions,
		Penalties:   rules,
		Entropy:     calculateEntropy(password),
	}
}

// charClasses only recognises ASCII letters and digits; everything else is
// neither lower, upper nor digit.
func charClasses(password string) (lower, upper, digit, special bool) {
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r < utf8.RuneSelf && strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return
}
