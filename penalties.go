package passmeter

import "unicode/utf8"

// Penalty rule identifiers, reported in Result.Penalties.
const (
	RuleCommonPassword = "common_password"
	RuleSequential     = "sequential_chars"
	RuleRepeated       = "repeated_chars"
	RuleDictionaryWord = "dictionary_word"
)

// penalty is a single subtractive rule hit.
type penalty struct {
	Rule       string
	Points     int
	Suggestion string
}

// detectPenalties analyzes a password and returns the applicable penalties
// in the order they must be applied.
func detectPenalties(password, lower string, dict *dictionary) []penalty {
	var penalties []penalty

	// 1. Common password (exact, case-insensitive)
	if p := penaltyCommonPassword(lower, dict); p != nil {
		penalties = append(penalties, *p)
	}

	// 2. Sequential characters (abc, 123, etc.), applied at most once
	if p := penaltySequentialChars(password, lower); p != nil {
		penalties = append(penalties, *p)
	}

	// 3. Repeated characters
	if p := penaltyRepeatedChars(password); p != nil {
		penalties = append(penalties, *p)
	}

	// 4. Dictionary substring, first match only
	if p := penaltyDictionaryWord(lower); p != nil {
		penalties = append(penalties, *p)
	}

	return penalties
}

// --- Common password (exact match) ---

func penaltyCommonPassword(lower string, dict *dictionary) *penalty {
	if dict == nil || !dict.contains(lower) {
		return nil
	}
	return &penalty{
		Rule:       RuleCommonPassword,
		Points:     2,
		Suggestion: "Avoid common passwords",
	}
}

// --- Sequential characters ---

var numericRuns = runTable("012", "123", "234", "345", "456", "567", "678", "789", "890")

// klm and lmn are deliberately absent.
var alphaRuns = runTable(
	"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij", "ijk", "jkl",
	"mno", "nop", "opq", "pqr", "qrs", "rst", "stu", "tuv", "uvw", "vwx", "wxy", "xyz",
)

func runTable(runs ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(runs))
	for _, r := range runs {
		m[r] = struct{}{}
	}
	return m
}

func penaltySequentialChars(password, lower string) *penalty {
	if !containsRun(password, numericRuns) && !containsRun(lower, alphaRuns) {
		return nil
	}
	return &penalty{
		Rule:       RuleSequential,
		Points:     1,
		Suggestion: "Avoid sequential characters or numbers",
	}
}

// containsRun reports whether any 3-byte window of s is in table. All
// table entries are ASCII, so byte windows cannot produce false hits on
// multi-byte runes.
func containsRun(s string, table map[string]struct{}) bool {
	for i := 0; i+3 <= len(s); i++ {
		if _, ok := table[s[i:i+3]]; ok {
			return true
		}
	}
	return false
}

// --- Repeated characters ---

func penaltyRepeatedChars(password string) *penalty {
	if maxRepeat(password) < 3 {
		return nil
	}
	return &penalty{
		Rule:       RuleRepeated,
		Points:     1,
		Suggestion: "Avoid repeating characters",
	}
}

// maxRepeat returns the length of the longest run of one identical rune.
func maxRepeat(s string) int {
	longest, current := 0, 0
	prev := utf8.RuneError
	for i, r := range s {
		if i > 0 && r == prev {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = r
	}
	return longest
}

// --- Dictionary words ---

func penaltyDictionaryWord(lower string) *penalty {
	if firstDictionaryWord(lower) == "" {
		return nil
	}
	return &penalty{
		Rule:       RuleDictionaryWord,
		Points:     1,
		Suggestion: "Avoid dictionary words",
	}
}
