// Package inflect converts identifiers and file names into readable text.
package inflect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Underscore converts CamelCase, kebab-case and spaced words into
// lower snake_case.
func Underscore(word string) string {
	runes := []rune(strings.TrimSpace(word))
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ' || r == '_':
			b.WriteRune('_')
			continue
		case unicode.IsUpper(r) && i > 0 && startsWord(runes, i):
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return collapse(b.String(), '_')
}

// startsWord reports whether the upper-case rune at i begins a new word:
// after a lower-case letter or digit, or as the last capital of an acronym.
func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}

// Humanize turns snake_case into a sentence with a capital first letter.
func Humanize(word string) string {
	word = strings.TrimSuffix(strings.TrimSpace(word), "_id")
	word = strings.ReplaceAll(word, "_", " ")
	word = strings.Join(strings.Fields(strings.ToLower(word)), " ")
	return Capitalize(word)
}

// Capitalize upper-cases the first rune.
func Capitalize(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

// HumanReadable converts a file or directory name such as PlantPotatoes
// or grow_new_potatoes into "Plant potatoes" / "Grow new potatoes".
func HumanReadable(name string) string {
	return Humanize(Underscore(name))
}

func collapse(value string, sep rune) string {
	var b strings.Builder
	last := rune(0)
	for _, r := range value {
		if r == sep && last == sep {
			continue
		}
		b.WriteRune(r)
		last = r
	}
	return strings.Trim(b.String(), string(sep))
}
