package corpus

import (
	"regexp"
	"strings"
	"unicode"
)

// markup left over from scraped reviews, e.g. "<br /><br />"
var htmlTag = regexp.MustCompile(`<[^>]*>`)

// StripHTML replaces markup tags with spaces so adjacent
// words are not glued together.
func StripHTML(text string) string {
	return htmlTag.ReplaceAllString(text, " ")
}

// Tokenize lowercases the text, strips markup and splits on
// non-letter runs. Length and stop word filtering happen at
// table build time, not here.
func Tokenize(text string) []string {
	text = strings.ToLower(StripHTML(text))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
