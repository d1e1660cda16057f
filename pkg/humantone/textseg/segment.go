// Package textseg isolates the document segmentation rules every rewrite pass
// and the scorer depend on: blank-line block splitting, terminator-based
// sentence splitting, and HTML tag stripping.
//
// Contract: blocks are delimited by blank lines; sentences are maximal runs of
// non-terminator characters ending in '.', '!' or '?'. Abbreviations, decimal
// numbers and nested HTML are known limitations of this splitter, kept here so
// a smarter replacement would not ripple through the passes.
package textseg

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	blockSepRe   = regexp.MustCompile(`\n[ \t]*\n`)
	sentenceRe   = regexp.MustCompile(`[^.!?]+[.!?]+`)
	leadingTagRe = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9]*)(\s[^>]*)?>`)
)

// Tags whose blocks are treated as opaque: passes never rewrite inside them.
var opaqueTags = map[string]struct{}{
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"ul": {}, "ol": {}, "li": {},
	"table": {}, "thead": {}, "tbody": {}, "tr": {}, "td": {}, "th": {},
	"nav": {},
}

// Blocks splits a document into top-level blocks on blank-line boundaries.
// An empty or all-whitespace document yields no blocks.
func Blocks(doc string) []string {
	if strings.TrimSpace(doc) == "" {
		return nil
	}
	parts := blockSepRe.Split(doc, -1)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		blocks = append(blocks, p)
	}
	return blocks
}

// JoinBlocks reassembles blocks with blank-line separators.
func JoinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n\n")
}

// Sentences splits text into sentences. Any trailing tail without a
// terminator (commonly a closing tag like "</p>") is appended to the last
// sentence rather than returned as a sentence of its own.
func Sentences(text string) []string {
	matches := sentenceRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		sentences = append(sentences, text[m[0]:m[1]])
	}

	tail := text[matches[len(matches)-1][1]:]
	if strings.TrimSpace(tail) != "" {
		sentences[len(sentences)-1] += tail
	}
	return sentences
}

// JoinSentences reassembles sentences with single-space separators.
func JoinSentences(sentences []string) string {
	trimmed := make([]string, 0, len(sentences))
	for _, s := range sentences {
		t := strings.TrimSpace(s)
		if t == "" {
			continue
		}
		trimmed = append(trimmed, t)
	}
	return strings.Join(trimmed, " ")
}

// MapSentences applies fn to every sentence match in text. Characters outside
// sentence matches (block separators, trailing tags) pass through untouched,
// so document structure survives sentence-scoped rewriting.
func MapSentences(text string, fn func(string) string) string {
	return sentenceRe.ReplaceAllStringFunc(text, fn)
}

// IsProse reports whether a block is eligible for rewriting. Blocks opening
// with a heading, list, table or nav tag are opaque.
func IsProse(block string) bool {
	tag, _, ok := LeadingTag(block)
	if !ok {
		return true
	}
	_, opaque := opaqueTags[strings.ToLower(tag)]
	return !opaque
}

// LeadingTag returns the tag name and full opening-tag text if the block
// starts with an HTML opening tag.
func LeadingTag(block string) (name, tag string, ok bool) {
	t := strings.TrimSpace(block)
	m := leadingTagRe.FindStringSubmatch(t)
	if m == nil {
		return "", "", false
	}
	return m[1], m[0], true
}

// StripTags extracts the text content of HTML-ish input. Input that fails to
// parse is returned unchanged; html.Parse is lenient enough that this is a
// guard, not an expected path.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	return b.String()
}

// WordCount counts whitespace-separated tokens after stripping markup.
func WordCount(s string) int {
	return len(strings.Fields(StripTags(s)))
}

// Words splits a sentence into whitespace-separated tokens, tags included.
// Passes that reason about word positions use this, not WordCount.
func Words(s string) []string {
	return strings.Fields(s)
}
