package printing

import (
	"sort"
	"strings"
)

// Substitution is one whole-word dictionary replacement, e.g. "Schezwan" -> "Szn"
type Substitution struct {
	Word        string
	Replacement string
}

// Abbreviator shortens item names to fit a column width. The pipeline is:
// dictionary substitution, then right-to-left vowel elision, then hard
// truncation as the last resort. The result never exceeds maxWidth and a
// name that already fits is returned unchanged.
//
// The dictionary is fixed at construction time, so two invocations with the
// same name and maxWidth always return the same result.
type Abbreviator struct {
	subs []Substitution
}

// NewAbbreviator creates an abbreviator from a substitution dictionary.
// Entries are applied longest word first so compound qualifiers win over
// their fragments; ties break lexicographically to keep ordering stable.
func NewAbbreviator(dict map[string]string) *Abbreviator {
	subs := make([]Substitution, 0, len(dict))
	for word, repl := range dict {
		if strings.TrimSpace(word) == "" {
			continue
		}
		subs = append(subs, Substitution{Word: word, Replacement: repl})
	}
	sort.Slice(subs, func(i, j int) bool {
		if len(subs[i].Word) != len(subs[j].Word) {
			return len(subs[i].Word) > len(subs[j].Word)
		}
		return subs[i].Word < subs[j].Word
	})
	return &Abbreviator{subs: subs}
}

// Shorten returns name reduced to at most maxWidth characters. The boolean
// is true only when hard truncation was needed - a layout-pressure signal
// the caller should surface to catalog maintainers.
func (a *Abbreviator) Shorten(name string, maxWidth int) (string, bool) {
	if maxWidth < 1 {
		return "", true
	}
	if runeLen(name) <= maxWidth {
		return name, false
	}

	// step 2: whole-word dictionary substitution, re-checking after each
	for _, sub := range a.subs {
		name = replaceWord(name, sub.Word, sub.Replacement)
		if runeLen(name) <= maxWidth {
			return name, false
		}
	}

	// step 3: elide vowels right to left, preserving the first character
	runes := []rune(name)
	for i := len(runes) - 1; i > 0 && len(runes) > maxWidth; i-- {
		if isVowel(runes[i]) {
			runes = append(runes[:i], runes[i+1:]...)
		}
	}
	if len(runes) <= maxWidth {
		return string(runes), false
	}

	// step 4: hard truncation, only reachable when steps 1-3 cannot fit
	return string(runes[:maxWidth]), true
}

// replaceWord substitutes whole space-separated words only, so "Fried" never
// rewrites the middle of "Refried"
func replaceWord(name, word, replacement string) string {
	fields := strings.Split(name, " ")
	changed := false
	for i, f := range fields {
		if f == word {
			fields[i] = replacement
			changed = true
		}
	}
	if !changed {
		return name
	}
	return strings.Join(fields, " ")
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func runeLen(s string) int {
	return len([]rune(s))
}
