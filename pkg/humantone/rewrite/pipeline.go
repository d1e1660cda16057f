// Package rewrite implements the humanization pipeline: an ordered sequence
// of independent rewrite passes applied to AI-generated HTML/text.
//
// Pass order is part of the observable contract. Later passes read the
// already-mutated text, so eligibility checks (length thresholds, skip
// markers) compound across the sequence.
package rewrite

import (
	"fmt"
	"regexp"
	"time"

	"github.com/humantone/humantone/pkg/humantone/internalerr"
	"github.com/humantone/humantone/pkg/humantone/lexicon"
	"github.com/humantone/humantone/pkg/humantone/textseg"
)

// Step names reported in Result.StepsApplied, in pipeline order.
const (
	StepCliches      = "cliche-removal"
	StepVocabulary   = "casual-vocabulary"
	StepContractions = "contractions"
	StepRuleOfThree  = "rule-of-three"
	StepSentenceVary = "sentence-variation"
	StepStarters     = "casual-starters"
	StepVoice        = "voice-markers"
	StepHedging      = "hedging"
	StepQuestions    = "rhetorical-questions"
	StepAsides       = "personal-asides"
	StepRepetition   = "mild-repetition"
)

// Config enables individual passes and tunes their firing probabilities.
// The zero value disables everything; start from DefaultConfig.
type Config struct {
	RemoveCliches       bool
	CasualizeVocabulary bool
	ApplyContractions   bool
	FixRuleOfThree      bool
	VarySentenceLength  bool
	CasualStarters      bool
	InjectVoice         bool
	InjectHedging       bool
	InjectQuestions     bool
	InjectAsides        bool
	InjectRepetition    bool

	// Frequencies are probabilities in [0,1] that an eligible site is
	// mutated. Passes clamp out-of-range values defensively; Validate
	// rejects them at the facade boundary.
	SplitFrequency      float64
	StarterFrequency    float64
	VoiceFrequency      float64
	HedgeFrequency      float64
	QuestionFrequency   float64
	AsideFrequency      float64
	RepetitionFrequency float64
}

// DefaultConfig returns the documented defaults: every pass on, injection
// frequencies tuned low enough that output stays readable.
func DefaultConfig() Config {
	return Config{
		RemoveCliches:       true,
		CasualizeVocabulary: true,
		ApplyContractions:   true,
		FixRuleOfThree:      true,
		VarySentenceLength:  true,
		CasualStarters:      true,
		InjectVoice:         true,
		InjectHedging:       true,
		InjectQuestions:     true,
		InjectAsides:        true,
		InjectRepetition:    true,

		SplitFrequency:      0.3,
		StarterFrequency:    0.08,
		VoiceFrequency:      0.10,
		HedgeFrequency:      0.06,
		QuestionFrequency:   0.06,
		AsideFrequency:      0.04,
		RepetitionFrequency: 0.03,
	}
}

// Validate rejects frequencies outside [0,1].
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"split_frequency", c.SplitFrequency},
		{"starter_frequency", c.StarterFrequency},
		{"voice_frequency", c.VoiceFrequency},
		{"hedge_frequency", c.HedgeFrequency},
		{"question_frequency", c.QuestionFrequency},
		{"aside_frequency", c.AsideFrequency},
		{"repetition_frequency", c.RepetitionFrequency},
	}
	for _, f := range fields {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%w: %s %v outside [0,1]", internalerr.ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// Result is the pipeline output: the mutated document plus audit metadata.
// StepsApplied lists every enabled pass whether or not it changed anything.
type Result struct {
	Content      string
	StepsApplied []string
	WordCount    int
	Elapsed      time.Duration
}

// Pipeline holds the lexicon and the matchers compiled from it. A Pipeline is
// immutable after construction and safe for concurrent Run calls, provided
// each call gets its own Source.
type Pipeline struct {
	lex *lexicon.Lexicon

	clicheRes        []*regexp.Regexp
	vocabRules       []vocabRule
	contractionRules []contractionRule
	triadRe          *regexp.Regexp
	repRules         []repRule
}

type vocabRule struct {
	re     *regexp.Regexp
	casual []string
}

type contractionRule struct {
	re         *regexp.Regexp
	contracted string
}

type repRule struct {
	re       *regexp.Regexp
	emphasis string
}

// New compiles a pipeline from the given lexicon. A nil lexicon means the
// built-in default tables.
func New(lex *lexicon.Lexicon) *Pipeline {
	if lex == nil {
		lex = lexicon.Default()
	}

	p := &Pipeline{
		lex:       lex,
		clicheRes: compileCliches(lex.Cliches()),
		triadRe:   compileTriads(lex.TriadNouns()),
	}

	for _, r := range lex.Replacements() {
		if r.Formal == "" || len(r.Casual) == 0 {
			continue
		}
		p.vocabRules = append(p.vocabRules, vocabRule{re: wholeWordRe(r.Formal), casual: r.Casual})
	}
	for _, c := range lex.Contractions() {
		if c.Expanded == "" || c.Contracted == "" {
			continue
		}
		p.contractionRules = append(p.contractionRules, contractionRule{re: wholeWordRe(c.Expanded), contracted: c.Contracted})
	}
	for _, r := range lex.Repetitions() {
		if r.Trigger == "" || r.Emphasis == "" {
			continue
		}
		p.repRules = append(p.repRules, repRule{re: wholeWordRe(r.Trigger), emphasis: r.Emphasis})
	}

	return p
}

// Lexicon returns the lexicon the pipeline was compiled from.
func (p *Pipeline) Lexicon() *lexicon.Lexicon { return p.lex }

// Run applies every enabled pass in fixed order, then normalizes whitespace
// artifacts. Degenerate input never fails: a pass with no eligible site is a
// no-op. rng must not be shared with a concurrent Run.
func (p *Pipeline) Run(doc string, cfg Config, rng Source) Result {
	start := time.Now()
	if rng == nil {
		rng = NewSource(start.UnixNano())
	}

	steps := []struct {
		name    string
		enabled bool
		apply   func(string) string
	}{
		{StepCliches, cfg.RemoveCliches, p.removeCliches},
		{StepVocabulary, cfg.CasualizeVocabulary, func(s string) string { return p.casualizeVocabulary(s, rng) }},
		{StepContractions, cfg.ApplyContractions, p.applyContractions},
		{StepRuleOfThree, cfg.FixRuleOfThree, func(s string) string { return p.fixRuleOfThree(s, rng) }},
		{StepSentenceVary, cfg.VarySentenceLength, func(s string) string { return p.varySentenceLength(s, rng, cfg.SplitFrequency) }},
		{StepStarters, cfg.CasualStarters, func(s string) string { return p.addCasualStarters(s, rng, cfg.StarterFrequency) }},
		{StepVoice, cfg.InjectVoice, func(s string) string { return p.injectVoice(s, rng, cfg.VoiceFrequency) }},
		{StepHedging, cfg.InjectHedging, func(s string) string { return p.injectHedging(s, rng, cfg.HedgeFrequency) }},
		{StepQuestions, cfg.InjectQuestions, func(s string) string { return p.injectQuestions(s, rng, cfg.QuestionFrequency) }},
		{StepAsides, cfg.InjectAsides, func(s string) string { return p.injectAsides(s, rng, cfg.AsideFrequency) }},
		{StepRepetition, cfg.InjectRepetition, func(s string) string { return p.injectRepetition(s, rng, cfg.RepetitionFrequency) }},
	}

	var applied []string
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		applied = append(applied, step.name)
		doc = step.apply(doc)
	}

	doc = normalize(doc)

	return Result{
		Content:      doc,
		StepsApplied: applied,
		WordCount:    textseg.WordCount(doc),
		Elapsed:      time.Since(start),
	}
}
