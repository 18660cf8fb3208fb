// Package sanitize cleans user-written prose before it is interpolated into
// a model prompt. Journal entries and wizard chat messages go through the
// same cleanup so neither surface accepts text the other would reject.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Text prepares raw user prose for prompt interpolation. Markup is stripped
// rather than escaped because the text is sent to a model, not a browser.
// Newlines and tabs survive; other control characters do not.
func Text(text string) string {
	text = norm.NFC.String(text)
	text = htmlTagPattern.ReplaceAllString(text, " ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}
