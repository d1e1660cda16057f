// Package score implements the human-likeness heuristic: given arbitrary
// text, it estimates how likely automated AI-content detectors are to flag
// it, and says why.
package score

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/humantone/humantone/pkg/humantone/lexicon"
	"github.com/humantone/humantone/pkg/humantone/textseg"
)

// RiskLevel buckets a score into detector risk tiers.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Per-category deduction caps. Scores start at 100 and only go down.
const (
	maxClichePenalty      = 25
	maxVocabPenalty       = 20
	maxContractionPenalty = 15
	varianceFlatPenalty   = 15
	triadFlatPenalty      = 10
)

// Report is the scorer output: a 0-100 score, one issue/recommendation pair
// per violated category, and a derived risk tier.
type Report struct {
	Score           int       `json:"score"`
	Issues          []string  `json:"issues"`
	Recommendations []string  `json:"recommendations"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Verdict         string    `json:"verdict"`
}

// Expanded verb phrases whose presence indicates missing contractions. This
// is a narrower, fixed list than the rewrite table: the scorer flags only the
// forms detectors reliably key on.
var expandedPhrases = []string{
	"do not", "does not", "did not", "will not", "would not", "could not",
	"should not", "is not", "are not", "was not",
	"it is", "that is", "there is", "here is",
}

// Scorer analyzes text against a lexicon. Read-only and safe for concurrent
// use once constructed.
type Scorer struct {
	lex         *lexicon.Lexicon
	vocabRes    []*regexp.Regexp
	expandedRes []*regexp.Regexp
	triadRe     *regexp.Regexp
}

// New compiles a scorer from the given lexicon. A nil lexicon means the
// built-in default tables.
func New(lex *lexicon.Lexicon) *Scorer {
	if lex == nil {
		lex = lexicon.Default()
	}
	s := &Scorer{lex: lex}

	for _, r := range lex.Replacements() {
		if r.Formal == "" {
			continue
		}
		s.vocabRes = append(s.vocabRes, wholeWordRe(r.Formal))
	}
	for _, phrase := range expandedPhrases {
		s.expandedRes = append(s.expandedRes, wholeWordRe(phrase))
	}

	// The triad check uses a narrower noun list than the rewrite pass: the
	// eight nouns AI detectors most commonly key on.
	s.triadRe = regexp.MustCompile(`(?i)\bthree (things|items|points|factors|reasons|ways|steps|tips)\b`)

	return s
}

// Score produces a diagnostic report for text. It never mutates its input
// and never fails: degenerate input simply scores clean.
func (s *Scorer) Score(text string) Report {
	rep := Report{Score: 100}
	lower := strings.ToLower(text)

	s.checkCliches(lower, &rep)
	s.checkVocabulary(text, &rep)
	s.checkContractions(text, &rep)
	s.checkVariance(text, &rep)
	s.checkTriads(text, &rep)

	if rep.Score < 0 {
		rep.Score = 0
	}

	switch {
	case rep.Score >= 85:
		rep.RiskLevel = RiskLow
		rep.Verdict = "Content appears human-written"
	case rep.Score >= 70:
		rep.RiskLevel = RiskMedium
		rep.Verdict = "Content may trigger some AI detectors"
	default:
		rep.RiskLevel = RiskHigh
		rep.Verdict = "Content likely to be flagged as AI-written"
	}

	return rep
}

// checkCliches counts distinct cliche phrases present as case-insensitive
// substrings. Deduction: min(25, 5 per phrase).
func (s *Scorer) checkCliches(lower string, rep *Report) {
	count := 0
	for _, phrase := range s.lex.Cliches() {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			count++
		}
	}
	if count == 0 {
		return
	}
	rep.Score -= min(maxClichePenalty, count*5)
	rep.Issues = append(rep.Issues, fmt.Sprintf("%d AI-typical cliche phrase(s) found", count))
	rep.Recommendations = append(rep.Recommendations, "Remove stock transition phrases; let sentences connect naturally")
}

// checkVocabulary counts all whole-word occurrences of formal terms.
// More than 5 total deducts min(20, 2 per occurrence).
func (s *Scorer) checkVocabulary(text string, rep *Report) {
	count := 0
	for _, re := range s.vocabRes {
		count += len(re.FindAllStringIndex(text, -1))
	}
	if count <= 5 {
		return
	}
	rep.Score -= min(maxVocabPenalty, count*2)
	rep.Issues = append(rep.Issues, fmt.Sprintf("%d formal vocabulary term(s) found", count))
	rep.Recommendations = append(rep.Recommendations, "Swap formal terms for everyday words (utilize -> use)")
}

// checkContractions counts residual expanded verb phrases. More than 3
// deducts min(15, 3 per occurrence).
func (s *Scorer) checkContractions(text string, rep *Report) {
	count := 0
	for _, re := range s.expandedRes {
		count += len(re.FindAllStringIndex(text, -1))
	}
	if count <= 3 {
		return
	}
	rep.Score -= min(maxContractionPenalty, count*3)
	rep.Issues = append(rep.Issues, fmt.Sprintf("%d uncontracted phrase(s) found", count))
	rep.Recommendations = append(rep.Recommendations, "Use contractions (do not -> don't); humans rarely write fully expanded forms")
}

// checkVariance flags monotone sentence rhythm. With more than 5 sentences,
// a coefficient of variation below 30 deducts a flat 15.
func (s *Scorer) checkVariance(text string, rep *Report) {
	sentences := textseg.Sentences(text)
	if len(sentences) <= 5 {
		return
	}

	counts := make([]float64, 0, len(sentences))
	var sum float64
	for _, sentence := range sentences {
		wc := float64(len(textseg.Words(sentence)))
		counts = append(counts, wc)
		sum += wc
	}
	mean := sum / float64(len(counts))
	if mean == 0 {
		return
	}

	var variance float64
	for _, wc := range counts {
		variance += (wc - mean) * (wc - mean)
	}
	variance /= float64(len(counts))
	cv := 100 * math.Sqrt(variance) / mean

	if cv >= 30 {
		return
	}
	rep.Score -= varianceFlatPenalty
	rep.Issues = append(rep.Issues, fmt.Sprintf("Low sentence length variance (CV %.1f); rhythm reads as machine-generated", cv))
	rep.Recommendations = append(rep.Recommendations, "Mix short punchy sentences with longer ones")
}

// checkTriads counts "three <noun>" listicle patterns. More than 1 match
// deducts a flat 10.
func (s *Scorer) checkTriads(text string, rep *Report) {
	count := len(s.triadRe.FindAllStringIndex(text, -1))
	if count <= 1 {
		return
	}
	rep.Score -= triadFlatPenalty
	rep.Issues = append(rep.Issues, fmt.Sprintf("%d rule-of-three pattern(s) found", count))
	rep.Recommendations = append(rep.Recommendations, "Vary list sizes; 'three things' is a detector tell")
}

func wholeWordRe(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}
