package shell

import "strings"

// Autocomplete is a fixed set of completion candidates
type Autocomplete struct {
	candidates []string
}

// NewAutocomplete creates an autocomplete over a static candidate list
func NewAutocomplete(candidates ...string) *Autocomplete {
	return &Autocomplete{candidates: candidates}
}

// Complete returns the text that completes prefix when exactly one
// candidate matches it
func (a *Autocomplete) Complete(prefix string) (string, bool) {
	if a == nil {
		return "", false
	}
	match := ""
	found := 0
	for _, c := range a.candidates {
		if strings.HasPrefix(c, prefix) {
			match = c
			found++
		}
	}
	if found != 1 {
		return "", false
	}
	return match[len(prefix):], true
}
