package textseg

import (
	"strings"
	"testing"
)

func TestBlocks(t *testing.T) {
	doc := "<h2>Title</h2>\n\n<p>First paragraph.</p>\n\n<p>Second paragraph.</p>"
	blocks := Blocks(doc)

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0] != "<h2>Title</h2>" {
		t.Errorf("unexpected first block: %q", blocks[0])
	}
}

func TestBlocksEmptyInput(t *testing.T) {
	if got := Blocks(""); got != nil {
		t.Errorf("empty doc should yield no blocks, got %v", got)
	}
	if got := Blocks("  \n\n  "); got != nil {
		t.Errorf("whitespace doc should yield no blocks, got %v", got)
	}
}

func TestBlocksSkipsBlankChunks(t *testing.T) {
	blocks := Blocks("First.\n\n   \n\nSecond.")
	if len(blocks) != 2 {
		t.Errorf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestSentences(t *testing.T) {
	sentences := Sentences("First one. Second one! Third one?")
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestSentencesTrailingTagAttachesToLast(t *testing.T) {
	sentences := Sentences("<p>First one. Second one.</p>")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if !strings.HasSuffix(sentences[1], "</p>") {
		t.Errorf("trailing tag should attach to last sentence: %q", sentences[1])
	}
}

func TestSentencesNoTerminator(t *testing.T) {
	sentences := Sentences("no terminator here")
	if len(sentences) != 1 || sentences[0] != "no terminator here" {
		t.Errorf("unterminated text should come back whole: %v", sentences)
	}
	if got := Sentences("   "); got != nil {
		t.Errorf("whitespace should yield no sentences, got %v", got)
	}
}

func TestMapSentencesPreservesSeparators(t *testing.T) {
	doc := "First block. Still first.\n\nSecond block."
	got := MapSentences(doc, func(s string) string { return s })
	if got != doc {
		t.Errorf("identity map should preserve document, got %q", got)
	}
}

func TestIsProse(t *testing.T) {
	cases := []struct {
		block string
		want  bool
	}{
		{"<p>A paragraph.</p>", true},
		{"Plain prose with no tags.", true},
		{"<h2>A heading</h2>", false},
		{"<ul><li>item</li></ul>", false},
		{"<table><tr><td>cell</td></tr></table>", false},
		{"<nav>links</nav>", false},
		{"<blockquote>quoted prose.</blockquote>", true},
	}
	for _, tc := range cases {
		if got := IsProse(tc.block); got != tc.want {
			t.Errorf("IsProse(%q) = %v, want %v", tc.block, got, tc.want)
		}
	}
}

func TestStripTags(t *testing.T) {
	got := StripTags("<p>Hello <strong>world</strong>.</p>")
	if strings.Contains(got, "<") {
		t.Errorf("tags should be stripped: %q", got)
	}
	if !strings.Contains(got, "Hello world") {
		t.Errorf("text content should survive: %q", got)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("<p>one two three</p>"); got != 3 {
		t.Errorf("expected 3 words, got %d", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("empty input should count 0 words, got %d", got)
	}
}

func TestLeadingTag(t *testing.T) {
	name, tag, ok := LeadingTag(`<p class="intro">Text</p>`)
	if !ok || name != "p" || tag != `<p class="intro">` {
		t.Errorf("unexpected leading tag: %q %q %v", name, tag, ok)
	}
	if _, _, ok := LeadingTag("no tag here"); ok {
		t.Error("plain text should have no leading tag")
	}
}
