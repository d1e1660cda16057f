package rewrite

import (
	"regexp"
	"strings"
)

var (
	horizontalWS   = regexp.MustCompile(`[ \t]+`)
	spaceBeforeP   = regexp.MustCompile(` +([.,])`)
	repeatedPeriod = regexp.MustCompile(`\.{2,}`)
	trailingWS     = regexp.MustCompile(`[ \t]+\n`)
	extraBlank     = regexp.MustCompile(`\n{3,}`)
	emptyPara      = regexp.MustCompile(`<p(\s[^>]*)?>\s*</p>`)
)

// normalize cleans up the artifacts the passes leave behind: doubled spaces
// from cliche deletion, space before punctuation, repeated periods from
// sentence splitting, runs of blank lines, empty paragraph tags.
func normalize(doc string) string {
	doc = horizontalWS.ReplaceAllString(doc, " ")
	doc = spaceBeforeP.ReplaceAllString(doc, "$1")
	doc = repeatedPeriod.ReplaceAllString(doc, ".")
	doc = trailingWS.ReplaceAllString(doc, "\n")
	doc = extraBlank.ReplaceAllString(doc, "\n\n")
	doc = emptyPara.ReplaceAllString(doc, "")
	return strings.TrimSpace(doc)
}
