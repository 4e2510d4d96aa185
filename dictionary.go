package passmeter

import (
	_ "embed"
	"strings"
)

//go:embed data/common_passwords.txt
var commonPasswordsData string

// dictionaryWords are matched as substrings of the lowercased password.
// Order matters: only the first hit is reported.
var dictionaryWords = []string{
	"password",
	"admin",
	"user",
	"login",
	"welcome",
	"hello",
	"world",
}

// dictionary holds the common passwords set for exact lookup.
// It is never mutated after loadDictionary returns.
type dictionary struct {
	set map[string]struct{}
}

// globalDict is initialized at package load time.
var globalDict = loadDictionary(commonPasswordsData)

func loadDictionary(data string) *dictionary {
	lines := strings.Split(data, "\n")
	d := &dictionary{
		set: make(map[string]struct{}, len(lines)),
	}
	for _, line := range lines {
		word := strings.TrimSpace(strings.ToLower(line))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.set[word] = struct{}{}
	}
	return d
}

// contains checks if the exact (already lowercased) word is in the dictionary.
func (d *dictionary) contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

func (d *dictionary) size() int {
	return len(d.set)
}

// firstDictionaryWord returns the first entry of dictionaryWords that occurs
// in lower, or "" when none does.
func firstDictionaryWord(lower string) string {
	for _, w := range dictionaryWords {
		if strings.Contains(lower, w) {
			return w
		}
	}
	return ""
}
