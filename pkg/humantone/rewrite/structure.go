package rewrite

import (
	"strings"

	"github.com/humantone/humantone/pkg/humantone/textseg"
)

// Eligibility thresholds for the block-scoped passes. A block shorter than
// the pass's minimum, or opening with an opaque tag (heading, list, table,
// nav), is never touched.
const (
	minBlockLenSplit    = 100
	minBlockLenStarters = 100
	minBlockLenVoice    = 150
	minBlockLenQuestion = 200
	minBlockLenAside    = 200
	minBlockLenRepeat   = 200
)

var splitBoundaries = map[string]struct{}{
	"and": {}, "but": {}, "so": {}, "which": {}, "that": {}, "because": {},
}

// varySentenceLength breaks up monotone runs of similar-length sentences.
// A sentence whose word count is within 5 of its predecessor's and exceeds
// 12 words is, with the configured probability, split at a conjunction or
// relative-pronoun boundary strictly between the 6th word and the 5th from
// the end. The conjunction becomes the re-capitalized head of the second
// sentence.
func (p *Pipeline) varySentenceLength(doc string, rng Source, freq float64) string {
	freq = clamp01(freq)
	blocks := textseg.Blocks(doc)
	for bi, block := range blocks {
		if !textseg.IsProse(block) || len(block) < minBlockLenSplit {
			continue
		}
		sentences := textseg.Sentences(block)
		if len(sentences) < 3 {
			continue
		}

		out := make([]string, 0, len(sentences))
		prevWC := len(textseg.Words(sentences[0]))
		out = append(out, sentences[0])

		changed := false
		for _, sentence := range sentences[1:] {
			wc := len(textseg.Words(sentence))
			split := false
			if wc > 12 && abs(wc-prevWC) <= 5 && rng.Chance(freq) {
				if first, second, ok := splitAtBoundary(sentence); ok {
					out = append(out, first, second)
					prevWC = len(textseg.Words(second))
					split = true
					changed = true
				}
			}
			if !split {
				out = append(out, sentence)
				prevWC = wc
			}
		}

		if changed {
			blocks[bi] = textseg.JoinSentences(out)
		}
	}
	return textseg.JoinBlocks(blocks)
}

// splitAtBoundary splits a sentence at the first eligible conjunction.
func splitAtBoundary(sentence string) (first, second string, ok bool) {
	words := textseg.Words(sentence)
	for i := 6; i < len(words)-5; i++ {
		if _, isBoundary := splitBoundaries[strings.ToLower(words[i])]; !isBoundary {
			continue
		}
		head := strings.Join(words[:i], " ")
		head = strings.TrimRight(head, ",;:")
		tail := append([]string{capitalizeFirst(words[i])}, words[i+1:]...)
		return head + ".", strings.Join(tail, " "), true
	}
	return "", "", false
}

var starterSkip = map[string]struct{}{
	"and": {}, "but": {}, "so": {}, "or": {}, "yet": {}, "now": {},
}

var starterPool = []string{"And ", "But ", "So "}

// addCasualStarters prepends "And "/"But "/"So " to occasional mid-block
// sentences. The first block of the document and the first sentence of every
// block are left alone, as are sentences that already open with a connective.
func (p *Pipeline) addCasualStarters(doc string, rng Source, freq float64) string {
	freq = clamp01(freq)
	blocks := textseg.Blocks(doc)
	for bi, block := range blocks {
		if bi == 0 || !textseg.IsProse(block) || len(block) < minBlockLenStarters {
			continue
		}
		sentences := textseg.Sentences(block)
		if len(sentences) < 2 {
			continue
		}

		changed := false
		for i := 1; i < len(sentences); i++ {
			if !rng.Chance(freq) {
				continue
			}
			if startsWithConnective(sentences[i]) {
				continue
			}
			starter := starterPool[rng.Pick(len(starterPool))]
			sentences[i] = insertAtStart(sentences[i], starter)
			changed = true
		}
		if changed {
			blocks[bi] = textseg.JoinSentences(sentences)
		}
	}
	return textseg.JoinBlocks(blocks)
}

func startsWithConnective(sentence string) bool {
	t := strings.TrimSpace(sentence)
	if _, tag, ok := textseg.LeadingTag(t); ok {
		t = strings.TrimSpace(strings.TrimPrefix(t, tag))
	}
	words := textseg.Words(t)
	if len(words) == 0 {
		return false
	}
	_, ok := starterSkip[strings.ToLower(strings.Trim(words[0], ",.:;"))]
	return ok
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
