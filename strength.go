package passmeter

import (
	"fmt"
	"strings"
)

// Strength is the classification derived from a final score.
type Strength int

const (
	// Unrated is only ever returned for empty input.
	Unrated Strength = iota
	VeryWeak
	Weak
	Medium
	Strong
	VeryStrong
)

// PromptLabel is the label shown before anything has been typed.
const PromptLabel = "Enter a password to check its strength"

var strengthLabels = map[Strength]string{
	Unrated:    PromptLabel,
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Medium:     "Medium",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

// classify maps a clamped score onto a Strength.
func classify(score int) Strength {
	switch {
	case score >= 6:
		return VeryStrong
	case score >= 5:
		return Strong
	case score >= 3:
		return Medium
	case score >= 1:
		return Weak
	default:
		return VeryWeak
	}
}

func (s Strength) String() string {
	if l, ok := strengthLabels[s]; ok {
		return l
	}
	return fmt.Sprintf("Strength(%d)", int(s))
}

// Class returns a css-style slug ("very-weak", "strong", ...). Unrated has
// no class and returns "".
func (s Strength) Class() string {
	if s == Unrated {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(s.String()), " ", "-")
}

// MarshalText encodes the strength as its label.
func (s Strength) MarshalText() ([]byte, error) {
	if _, ok := strengthLabels[s]; !ok {
		return nil, fmt.Errorf("passmeter: unknown strength %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts either a label ("Very Strong") or a class slug
// ("very-strong").
func (s *Strength) UnmarshalText(text []byte) error {
	t := string(text)
	for k, l := range strengthLabels {
		if t == l || (k != Unrated && t == k.Class()) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("passmeter: unknown strength %q", t)
}
