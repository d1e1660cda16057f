package rewrite

import (
	"strings"

	"github.com/humantone/humantone/pkg/humantone/textseg"
)

// injectVoice prepends a voice marker ("Honestly, ", "Here's the thing: ")
// to the start of an occasional block, lower-casing the letter it displaces.
// The first block never gets one.
func (p *Pipeline) injectVoice(doc string, rng Source, freq float64) string {
	freq = clamp01(freq)
	markers := p.lex.VoiceMarkers()
	if len(markers) == 0 {
		return doc
	}
	blocks := textseg.Blocks(doc)
	for bi, block := range blocks {
		if bi == 0 || !textseg.IsProse(block) || len(block) < minBlockLenVoice {
			continue
		}
		if !rng.Chance(freq) {
			continue
		}
		marker := markers[rng.Pick(len(markers))]
		blocks[bi] = insertAtStart(block, marker)
	}
	return textseg.JoinBlocks(blocks)
}

// injectHedging slips one hedging word into an occasional long declarative
// sentence, at a random position between the 3rd and 5th word. Sentences that
// are short, interrogative, or already hedged are skipped. This pass is
// sentence-scoped across the whole document, not block-scoped.
func (p *Pipeline) injectHedging(doc string, rng Source, freq float64) string {
	freq = clamp01(freq)
	hedges := p.lex.Hedges()
	if len(hedges) == 0 {
		return doc
	}
	return textseg.MapSentences(doc, func(sentence string) string {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) < 80 || strings.Contains(trimmed, "?") || p.lex.HasHedge(trimmed) {
			return sentence
		}
		if !rng.Chance(freq) {
			return sentence
		}
		words := textseg.Words(trimmed)
		if len(words) <= 8 {
			return sentence
		}
		pos := 2 + rng.Pick(3)
		hedge := hedges[rng.Pick(len(hedges))]
		rebuilt := make([]string, 0, len(words)+1)
		rebuilt = append(rebuilt, words[:pos]...)
		rebuilt = append(rebuilt, hedge)
		rebuilt = append(rebuilt, words[pos:]...)
		lead := sentence[:len(sentence)-len(strings.TrimLeft(sentence, " \t\n"))]
		return lead + strings.Join(rebuilt, " ")
	})
}

// injectQuestions appends a rhetorical question to the end of an occasional
// block, inside the closing </p> when one terminates the block. The first two
// blocks never get one.
func (p *Pipeline) injectQuestions(doc string, rng Source, freq float64) string {
	freq = clamp01(freq)
	questions := p.lex.Questions()
	if len(questions) == 0 {
		return doc
	}
	blocks := textseg.Blocks(doc)
	for bi, block := range blocks {
		if bi < 2 || !textseg.IsProse(block) || len(block) < minBlockLenQuestion {
			continue
		}
		if !rng.Chance(freq) {
			continue
		}
		q := questions[rng.Pick(len(questions))]
		trimmed := strings.TrimRight(block, " \t\n")
		if strings.HasSuffix(trimmed, "</p>") {
			blocks[bi] = strings.TrimSuffix(trimmed, "</p>") + " " + q + "</p>"
		} else {
			blocks[bi] = trimmed + " " + q
		}
	}
	return textseg.JoinBlocks(blocks)
}

// injectAsides inserts a parenthetical aside just before the terminal
// punctuation of a random non-first sentence in an occasional block. The
// first three blocks never get one.
func (p *Pipeline) injectAsides(doc string, rng Source, freq float64) string {
	freq = clamp01(freq)
	asides := p.lex.Asides()
	if len(asides) == 0 {
		return doc
	}
	blocks := textseg.Blocks(doc)
	for bi, block := range blocks {
		if bi < 3 || !textseg.IsProse(block) || len(block) < minBlockLenAside {
			continue
		}
		sentences := textseg.Sentences(block)
		if len(sentences) <= 2 {
			continue
		}
		if !rng.Chance(freq) {
			continue
		}
		idx := 1 + rng.Pick(len(sentences)-1)
		aside := asides[rng.Pick(len(asides))]
		if rewritten, ok := insertBeforeTerminator(sentences[idx], " "+aside); ok {
			sentences[idx] = rewritten
			blocks[bi] = textseg.JoinSentences(sentences)
		}
	}
	return textseg.JoinBlocks(blocks)
}

// injectRepetition applies one of the emphasis-doubling patterns to the first
// matching trigger word in an occasional block: "important" becomes
// "important. Really important". Only the first occurrence in the block is
// eligible, and even then an inner coin flip keeps the pass rare.
func (p *Pipeline) injectRepetition(doc string, rng Source, freq float64) string {
	freq = clamp01(freq)
	if len(p.repRules) == 0 {
		return doc
	}
	blocks := textseg.Blocks(doc)
	for bi, block := range blocks {
		if !textseg.IsProse(block) || len(block) < minBlockLenRepeat {
			continue
		}
		if !rng.Chance(freq) {
			continue
		}
		rule := p.repRules[rng.Pick(len(p.repRules))]
		loc := rule.re.FindStringIndex(block)
		if loc == nil {
			continue
		}
		if !rng.Chance(0.5) {
			continue
		}
		blocks[bi] = block[:loc[1]] + ". " + rule.emphasis + block[loc[1]:]
	}
	return textseg.JoinBlocks(blocks)
}

// insertBeforeTerminator inserts fragment immediately before the last
// sentence terminator. Returns false when the sentence has none.
func insertBeforeTerminator(sentence, fragment string) (string, bool) {
	last := strings.LastIndexAny(sentence, ".!?")
	if last < 0 {
		return sentence, false
	}
	return sentence[:last] + fragment + sentence[last:], true
}
