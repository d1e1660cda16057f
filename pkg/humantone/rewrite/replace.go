package rewrite

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wholeWordRe compiles a case-insensitive whole-word/whole-phrase matcher.
func wholeWordRe(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// matchCase transfers the capitalization of the matched text's first letter
// onto the replacement: "Utilize" -> "Use", "utilize" -> "use".
func matchCase(match, replacement string) string {
	r, _ := utf8.DecodeRuneInString(match)
	if unicode.IsUpper(r) {
		return capitalizeFirst(replacement)
	}
	return lowerFirst(replacement)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

var openingPRe = regexp.MustCompile(`^\s*<p(\s[^>]*)?>`)

// insertAtStart prepends fragment to text, placing it just inside a leading
// <p> tag when one is present and lower-casing the original first letter.
func insertAtStart(text, fragment string) string {
	if loc := openingPRe.FindStringIndex(text); loc != nil {
		head := text[:loc[1]]
		rest := text[loc[1]:]
		return head + fragment + lowerFirstNonSpace(rest)
	}
	lead := text[:len(text)-len(strings.TrimLeft(text, " \t\n"))]
	return lead + fragment + lowerFirstNonSpace(text[len(lead):])
}

func lowerFirstNonSpace(s string) string {
	trimmed := strings.TrimLeft(s, " \t\n")
	lead := s[:len(s)-len(trimmed)]
	return lead + lowerFirst(trimmed)
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
