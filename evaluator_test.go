package passmeter

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Empty(t *testing.T) {
	r := Evaluate("")

	assert.Equal(t, Unrated, r.Strength)
	assert.Equal(t, PromptLabel, r.Strength.String())
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, baselineTips, r.Suggestions)
	assert.Empty(t, r.Penalties)
	assert.Zero(t, r.Entropy)

	// Callers must not be able to corrupt the shared baseline list.
	r.Suggestions[0] = "mutated"
	assert.Equal(t, "Use a mix of uppercase and lowercase letters", Evaluate("").Suggestions[0])
}

func TestEvaluate_Examples(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		score       int
		strength    Strength
		suggestions []string
		penalties   []string
	}{
		{
			name:     "common password and dictionary word",
			password: "password",
			score:    0,
			strength: VeryWeak,
			suggestions: []string{
				SuggestUpper, SuggestDigit, SuggestSpecial,
				"Avoid common passwords", "Avoid dictionary words",
			},
			penalties: []string{RuleCommonPassword, RuleDictionaryWord},
		},
		{
			name:        "all classes no penalties",
			password:    "Tr0ub4dor&3QwP!",
			score:       6,
			strength:    VeryStrong,
			suggestions: []string{SuggestExcellent},
		},
		{
			name:        "mixed case alphabetic run",
			password:    "Tr0ub4dor&3XyZ!",
			score:       5,
			strength:    Strong,
			suggestions: []string{"Avoid sequential characters or numbers", SuggestGood},
			penalties:   []string{RuleSequential},
		},
		{
			name:     "repeated lowercase",
			password: "aaaaaaaa",
			score:    1,
			strength: Weak,
			suggestions: []string{
				SuggestUpper, SuggestDigit, SuggestSpecial, "Avoid repeating characters",
			},
			penalties: []string{RuleRepeated},
		},
		{
			name:     "alpha and numeric runs penalised once",
			password: "abc12345",
			score:    2,
			strength: Weak,
			suggestions: []string{
				SuggestUpper, SuggestSpecial, "Avoid sequential characters or numbers",
			},
			penalties: []string{RuleSequential},
		},
		{
			name:        "medium with one issue gets encouragement",
			password:    "Mangotree7",
			score:       4,
			strength:    Medium,
			suggestions: []string{SuggestSpecial, SuggestGood},
		},
		{
			name:        "strong without issues is celebrated",
			password:    "Mangotree7!",
			score:       5,
			strength:    Strong,
			suggestions: []string{SuggestExcellent},
		},
		{
			name:     "short",
			password: "aB3!",
			score:    4,
			strength: Medium,
			suggestions: []string{
				SuggestLength, SuggestGood,
			},
		},
		{
			name:     "dictionary word only first match counts",
			password: "helloworlduser",
			score:    2,
			strength: Weak,
			suggestions: []string{
				SuggestUpper, SuggestDigit, SuggestSpecial, "Avoid dictionary words",
			},
			penalties: []string{RuleDictionaryWord},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(tt.password)
			assert.Equal(t, tt.score, r.Score)
			assert.Equal(t, tt.strength, r.Strength)
			assert.Equal(t, tt.suggestions, r.Suggestions)
			assert.Equal(t, tt.penalties, r.Penalties)
		})
	}
}

func TestEvaluate_ScoreNeverNegative(t *testing.T) {
	inputs := []string{
		"a", "1", "!", " ", "\n\n\n", "123", "aaa", "password", "admin", "111111",
		"qwerty", "abcabcabc", "пароль", "日本語のパスワード", "\xff\xfe\xfd",
		strings.Repeat("x", 10000), strings.Repeat("Ab1!", 2500),
	}
	for _, in := range inputs {
		r := Evaluate(in)
		assert.GreaterOrEqual(t, r.Score, 0, "input %q", in)
		assert.LessOrEqual(t, r.Score, 6, "input %q", in)
		assert.NotEqual(t, Unrated, r.Strength, "input %q", in)
		assert.NotEmpty(t, r.Suggestions, "input %q", in)
	}
}

func TestEvaluate_Unicode(t *testing.T) {
	// Cyrillic letters are not counted as lowercase.
	r := Evaluate("пароль")
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, VeryWeak, r.Strength)
	assert.Contains(t, r.Suggestions, SuggestLower)
	assert.Contains(t, r.Suggestions, SuggestLength)

	// Length is counted in characters, not bytes.
	pw := "日本語のパスワード"
	require.Equal(t, 9, utf8.RuneCountInString(pw))
	r = Evaluate(pw)
	assert.Equal(t, 1, r.Score)
	assert.NotContains(t, r.Suggestions, SuggestLength)
}

func TestEvaluate_CommonPasswordCaseInsensitive(t *testing.T) {
	r := Evaluate("LetMeIn")
	assert.Contains(t, r.Penalties, RuleCommonPassword)

	r = Evaluate("letmein-not")
	assert.NotContains(t, r.Penalties, RuleCommonPassword)
}

func TestEvaluate_Deterministic(t *testing.T) {
	for _, pw := range []string{"", "password", "Tr0ub4dor&3XyZ!", "abc12345", "zzz"} {
		assert.Equal(t, Evaluate(pw), Evaluate(pw), "input %q", pw)
	}
}

func TestEvaluate_Concurrent(t *testing.T) {
	want := Evaluate("Tr0ub4dor&3XyZ!")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, Evaluate("Tr0ub4dor&3XyZ!"))
			}
		}()
	}
	wg.Wait()
}

func TestNewEvaluatorWithDict(t *testing.T) {
	custom := NewEvaluatorWithDict("# team list\nMangoTree7\n\n")
	assert.Equal(t, 1, custom.DictionarySize())

	r := custom.Evaluate("Mangotree7")
	assert.Equal(t, 2, r.Score)
	assert.Equal(t, Weak, r.Strength)
	assert.Equal(t, []string{RuleCommonPassword}, r.Penalties)

	// The embedded list is not consulted by a custom evaluator.
	assert.NotContains(t, custom.Evaluate("password").Penalties, RuleCommonPassword)

	assert.Same(t, NewEvaluator(), NewEvaluatorWithDict("  \n"))
}

func TestSequentialTables(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"xyz", true},
		{"012", true},
		{"890", true},
		{"klm", false},
		{"lmn", false},
		{"901", false},
		{"cba", false},
		{"ab1c", false},
		{"XYZ", true},
		{"é12", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := penaltySequentialChars(tt.in, strings.ToLower(tt.in)) != nil
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxRepeat(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"aab", 2},
		{"abbb", 3},
		{"ééé", 3},
		{"aAa", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maxRepeat(tt.in), "input %q", tt.in)
	}
}

func TestCalculateEntropy(t *testing.T) {
	assert.Zero(t, calculateEntropy(""))
	assert.Equal(t, 26, effectivePoolSize("abc"))
	assert.Equal(t, 26+26+10+30, effectivePoolSize("aB3!"))
	assert.Equal(t, 26+33, effectivePoolSize("a b"))
	assert.Greater(t, calculateEntropy("Tr0ub4dor&3QwP!"), calculateEntropy("tr0ub4dor"))
}

func TestStrength_Text(t *testing.T) {
	tests := []struct {
		s     Strength
		label string
		class string
	}{
		{VeryWeak, "Very Weak", "very-weak"},
		{Weak, "Weak", "weak"},
		{Medium, "Medium", "medium"},
		{Strong, "Strong", "strong"},
		{VeryStrong, "Very Strong", "very-strong"},
		{Unrated, PromptLabel, ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.s.String())
			assert.Equal(t, tt.class, tt.s.Class())

			var back Strength
			require.NoError(t, back.UnmarshalText([]byte(tt.label)))
			assert.Equal(t, tt.s, back)
		})
	}

	var s Strength
	require.NoError(t, s.UnmarshalText([]byte("very-strong")))
	assert.Equal(t, VeryStrong, s)
	assert.Error(t, s.UnmarshalText([]byte("meh")))

	_, err := Strength(42).MarshalText()
	assert.Error(t, err)
}

func TestResult_JSON(t *testing.T) {
	b, err := json.Marshal(Evaluate("Tr0ub4dor&3XyZ!"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "Strong", raw["strength"])
	assert.EqualValues(t, 5, raw["score"])
	assert.Contains(t, raw, "entropy_bits")

	var back Result
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, Evaluate("Tr0ub4dor&3XyZ!"), back)
}

func TestClassify(t *testing.T) {
	want := []Strength{VeryWeak, Weak, Weak, Medium, Medium, Strong, VeryStrong, VeryStrong}
	for score, s := range want {
		assert.Equal(t, s, classify(score), "score %d", score)
	}
}

func TestDictionaryLoaded(t *testing.T) {
	require.NotNil(t, globalDict)
	assert.Greater(t, globalDict.size(), 100)
	assert.True(t, globalDict.contains("password"))
	assert.True(t, globalDict.contains("123456"))
	assert.False(t, globalDict.contains("Password"), "entries are stored lowercased")
	t.Logf("Dictionary loaded with %d entries", globalDict.size())
}

func TestGenerate(t *testing.T) {
	e := NewEvaluator()

	pwd, err := e.Generate(16)
	require.NoError(t, err)
	assert.Len(t, pwd, 16)

	r := e.Evaluate(pwd)
	assert.Equal(t, VeryStrong, r.Strength, "generated %q", pwd)

	lower, upper, digit, special := charClasses(pwd)
	assert.True(t, lower && upper && digit && special, "generated %q missing a class", pwd)
}

func TestGenerate_MinimumLength(t *testing.T) {
	pwd, err := NewEvaluator().Generate(4)
	require.NoError(t, err)
	assert.Len(t, pwd, MinGenerateLength)
}

// Benchmarks
func BenchmarkEvaluate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Evaluate("MyP@ssw0rd!23")
	}
}

func BenchmarkGenerate(b *testing.B) {
	e := NewEvaluator()
	for i := 0; i < b.N; i++ {
		_, _ = e.Generate(16)
	}
}
