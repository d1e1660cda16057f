package rewrite

import (
	"strings"
	"testing"

	"github.com/humantone/humantone/pkg/humantone/textseg"
)

// longPara is comfortably over every block-length threshold.
const longPara = "<p>The migration took the better part of a quarter to land safely. " +
	"Every service had to be moved without downtime and without losing a single request. " +
	"The rollout plan went through four full rehearsals before anyone touched production.</p>"

func TestInjectVoicePrependsInsideTag(t *testing.T) {
	p := New(nil)
	doc := "Opening block stays untouched here.\n\n" + longPara

	got := p.injectVoice(doc, stubSource{fire: true, pick: 0}, 1)
	blocks := textseg.Blocks(got)

	if !strings.HasPrefix(blocks[1], "<p>Honestly, the migration") {
		t.Errorf("voice marker should sit inside the tag with the original letter lowered: %q", blocks[1])
	}
	if strings.Contains(blocks[0], "Honestly") {
		t.Error("first block must never get a voice marker")
	}
}

func TestInjectVoiceSkipsShortBlocks(t *testing.T) {
	p := New(nil)
	doc := "Opening block stays untouched here.\n\nShort second block, nothing to see."

	got := p.injectVoice(doc, stubSource{fire: true, pick: 0}, 1)
	if strings.Contains(got, "Honestly") {
		t.Errorf("blocks under the length floor must be skipped: %q", got)
	}
}

func TestInjectHedgingPosition(t *testing.T) {
	p := New(nil)
	sentence := "The deployment pipeline finished every single stage without any manual intervention at all."

	got := p.injectHedging(sentence, stubSource{fire: true, pick: 0}, 1)
	words := textseg.Words(got)

	if words[2] != "probably" {
		t.Errorf("hedge should land at word index 2, got %v", words[:5])
	}
}

func TestInjectHedgingSkips(t *testing.T) {
	p := New(nil)

	question := "Did the deployment pipeline finish every single stage without any manual intervention at all?"
	if got := p.injectHedging(question, stubSource{fire: true}, 1); got != question {
		t.Errorf("interrogative sentences must be skipped: %q", got)
	}

	hedged := "The deployment probably finished every single stage without any manual intervention at all."
	if got := p.injectHedging(hedged, stubSource{fire: true}, 1); got != hedged {
		t.Errorf("already-hedged sentences must be skipped: %q", got)
	}

	short := "It finished early."
	if got := p.injectHedging(short, stubSource{fire: true}, 1); got != short {
		t.Errorf("short sentences must be skipped: %q", got)
	}
}

func TestInjectQuestionsAppendsInsideClosingTag(t *testing.T) {
	p := New(nil)
	doc := "First block here.\n\nSecond block here.\n\n" + longPara

	got := p.injectQuestions(doc, stubSource{fire: true, pick: 0}, 1)
	blocks := textseg.Blocks(got)

	if !strings.HasSuffix(blocks[2], "Sound familiar?</p>") {
		t.Errorf("question should be appended inside the closing tag: %q", blocks[2])
	}
	if strings.Contains(blocks[0], "?") || strings.Contains(blocks[1], "?") {
		t.Error("first two blocks must never get a question")
	}
}

func TestInjectAsidesBeforeTerminalPeriod(t *testing.T) {
	p := New(nil)
	doc := "One.\n\nTwo.\n\nThree.\n\n" + longPara

	got := p.injectAsides(doc, stubSource{fire: true, pick: 0}, 1)
	blocks := textseg.Blocks(got)

	if !strings.Contains(blocks[3], "(at least in my experience).") {
		t.Errorf("aside should be inserted before a sentence's terminal period: %q", blocks[3])
	}
	if strings.Contains(blocks[3], "<p>The migration took the better part of a quarter to land safely (") {
		t.Errorf("the first sentence of the block must never get the aside: %q", blocks[3])
	}
}

func TestInjectRepetitionFirstMatchOnly(t *testing.T) {
	p := New(nil)
	block := "Consistency is important for every team that ships weekly. It stays important even when " +
		"deadlines slip and the backlog grows. Nobody regrets investing in it once the habit forms, " +
		"and most teams wish they had started far earlier than they did."

	got := p.injectRepetition(block, stubSource{fire: true, pick: 0}, 1)

	if n := strings.Count(got, "Really important"); n != 1 {
		t.Fatalf("exactly one emphasis insertion expected, got %d: %q", n, got)
	}
	if !strings.Contains(got, "important. Really important for every team") {
		t.Errorf("emphasis should double the first occurrence only: %q", got)
	}
}

func TestInjectRepetitionNoTrigger(t *testing.T) {
	p := New(nil)
	block := "Nothing in this paragraph mentions any of the trigger words at all, so the pass " +
		"has no eligible site and must leave the text completely alone, even at frequency one " +
		"with a source that always fires on every single coin flip it is offered."

	if got := p.injectRepetition(block, stubSource{fire: true, pick: 0}, 1); got != block {
		t.Errorf("block without trigger words must be untouched: %q", got)
	}
}
