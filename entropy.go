package passmeter

import (
	"math"
	"unicode/utf8"
)

// calculateEntropy estimates the brute-force entropy bits of a password
// based on the character pool size and length.
func calculateEntropy(password string) float64 {
	n := utf8.RuneCountInString(password)
	if n == 0 {
		return 0
	}

	poolSize := effectivePoolSize(password)
	if poolSize <= 1 {
		return 0
	}

	// Entropy = length * log2(poolSize), rounded to 2 decimals so results
	// compare equal across runs and across the wire.
	bits := float64(n) * math.Log2(float64(poolSize))
	return math.Round(bits*100) / 100
}

// effectivePoolSize determines the character pool based on what types
// of characters are actually present in the password.
func effectivePoolSize(password string) int {
	hasLower, hasUpper, hasDigit, hasSpecial := charClasses(password)

	hasOther := false
	for _, r := range password {
		if !isClassified(r) {
			hasOther = true
			break
		}
	}

	pool := 0
	if hasLower {
		pool += 26
	}
	if hasUpper {
		pool += 26
	}
	if hasDigit {
		pool += 10
	}
	if hasSpecial {
		pool += len(specialChars)
	}
	if hasOther {
		pool += 33 // space, backtick, tilde and anything non-ASCII
	}
	return pool
}

func isClassified(r rune) bool {
	l, u, d, s := charClasses(string(r))
	return l || u || d || s
}
