package vocabulary

import (
	"strings"
	"unicode/utf8"
)

// punctuation is removed from text before splitting. Removal does not insert
// a space, so "E-Mail" becomes "EMail".
const punctuation = ".,/#!$%^&*;:{}=-_`~()„“”\"‚‘’'»«›‹?"

// Tokenize strips punctuation and splits text on runs of whitespace.
// Empty or invalid UTF-8 input yields no tokens.
func Tokenize(text string) []string {
	if text == "" || !utf8.ValidString(text) {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)

	return strings.Fields(cleaned)
}
