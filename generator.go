package passmeter

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// MinGenerateLength is the shortest password Generate will produce.
const MinGenerateLength = 12

// ErrGenerateExhausted is returned when no candidate rated VeryStrong.
var ErrGenerateExhausted = errors.New("passmeter: no very strong candidate generated")

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	generateSets = 4
)

// Generate creates a random password of the given length that e rates
// VeryStrong. Lengths below MinGenerateLength are raised to it.
// It retries until a valid password is produced (max 1000 attempts).
func (e *Evaluator) Generate(length int) (string, error) {
	const maxAttempts = 1000

	if length < MinGenerateLength {
		length = MinGenerateLength
	}

	for i := 0; i < maxAttempts; i++ {
		pwd, err := generateCandidate(length)
		if err != nil {
			return "", err
		}
		if e.Evaluate(pwd).Strength == VeryStrong {
			return pwd, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrGenerateExhausted, maxAttempts)
}

func generateCandidate(length int) (string, error) {
	required := [generateSets]string{lowerChars, upperChars, numberChars, specialChars}
	charset := lowerChars + upperChars + numberChars + specialChars

	pwd := make([]byte, length)

	// Fill required characters first at random positions
	positions := make([]int, length)
	for i := range positions {
		positions[i] = i
	}
	for i := len(positions) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return "", err
		}
		positions[i], positions[j] = positions[j], positions[i]
	}

	pos := 0
	for _, req := range required {
		n, err := randIndex(len(req))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = req[n]
		pos++
	}

	// Fill remaining positions
	for ; pos < length; pos++ {
		n, err := randIndex(len(charset))
		if err != nil {
			return "", err
		}
		pwd[positions[pos]] = charset[n]
	}

	return string(pwd), nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("passmeter: read random: %w", err)
	}
	return int(v.Int64()), nil
}
