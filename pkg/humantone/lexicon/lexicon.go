package lexicon

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the fixed vocabulary the engine rewrites against and the
// scorer penalizes against:
// - Cliches: stock phrases that read as machine-written (deleted + penalized)
// - Replacements: formal term -> casual alternatives (substituted + penalized)
// - Contractions: expanded phrase -> contracted form (contracted + absence penalized)
// - Pools: insertable fragments for the voice/hedge/question/aside passes
// - TriadNouns: countable nouns that trigger rule-of-three correction
// - Repetitions: trigger word -> emphasis fragment for mild repetition
//
// Design principles:
// - Read-only at run time: built once, then shared freely across goroutines
// - Data, not code: loadable from YAML so tests can use controlled vocabularies
// - Longest-first ordering for phrase tables, so "take it to the next level"
//   wins over "next level"
type Lexicon struct {
	cliches      []string
	replacements []Replacement
	contractions []Contraction
	voiceMarkers []string
	hedges       []string
	questions    []string
	asides       []string
	triadNouns   []string
	repetitions  []Repetition
}

// Replacement maps one formal term to its casual alternatives.
type Replacement struct {
	Formal string
	Casual []string
}

// Contraction maps an expanded phrase to its contracted form.
type Contraction struct {
	Expanded   string
	Contracted string
}

// Repetition keys an emphasis fragment to a trigger word.
// "important" + "Really important" yields "important. Really important".
type Repetition struct {
	Trigger  string
	Emphasis string
}

// Tables is the raw material a Lexicon is built from.
type Tables struct {
	Cliches      []string
	Replacements []Replacement
	Contractions []Contraction
	VoiceMarkers []string
	Hedges       []string
	Questions    []string
	Asides       []string
	TriadNouns   []string
	Repetitions  []Repetition
}

// New builds a lexicon from explicit tables. Phrase tables are re-sorted
// longest-first; everything else keeps its given order.
func New(t Tables) *Lexicon {
	lex := &Lexicon{
		cliches:      append([]string(nil), t.Cliches...),
		replacements: append([]Replacement(nil), t.Replacements...),
		contractions: append([]Contraction(nil), t.Contractions...),
		voiceMarkers: append([]string(nil), t.VoiceMarkers...),
		hedges:       append([]string(nil), t.Hedges...),
		questions:    append([]string(nil), t.Questions...),
		asides:       append([]string(nil), t.Asides...),
		triadNouns:   append([]string(nil), t.TriadNouns...),
		repetitions:  append([]Repetition(nil), t.Repetitions...),
	}

	sort.SliceStable(lex.replacements, func(i, j int) bool {
		return len(lex.replacements[i].Formal) > len(lex.replacements[j].Formal)
	})
	sort.SliceStable(lex.contractions, func(i, j int) bool {
		return len(lex.contractions[i].Expanded) > len(lex.contractions[j].Expanded)
	})

	return lex
}

// LoadFromYAML loads lexicon tables from a YAML file.
//
// Expected format:
//
//	cliches: [In conclusion, Furthermore]
//	replacements:
//	  - formal: utilize
//	    casual: [use, work with]
//	contractions:
//	  - expanded: do not
//	    contracted: don't
//	voice_markers: ["Honestly, "]
//	hedges: [probably, perhaps]
//	questions: [Sound familiar?]
//	asides: ["(yes, really)"]
//	triad_nouns: [things, items]
//	repetitions:
//	  - trigger: important
//	    emphasis: Really important
//
// Omitted sections fall back to the built-in defaults for that section, so a
// file can override just the tables it cares about.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Cliches      []string `yaml:"cliches"`
		Replacements []struct {
			Formal string   `yaml:"formal"`
			Casual []string `yaml:"casual"`
		} `yaml:"replacements"`
		Contractions []struct {
			Expanded   string `yaml:"expanded"`
			Contracted string `yaml:"contracted"`
		} `yaml:"contractions"`
		VoiceMarkers []string `yaml:"voice_markers"`
		Hedges       []string `yaml:"hedges"`
		Questions    []string `yaml:"questions"`
		Asides       []string `yaml:"asides"`
		TriadNouns   []string `yaml:"triad_nouns"`
		Repetitions  []struct {
			Trigger  string `yaml:"trigger"`
			Emphasis string `yaml:"emphasis"`
		} `yaml:"repetitions"`
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	t := defaultTables()
	if file.Cliches != nil {
		t.Cliches = file.Cliches
	}
	if file.Replacements != nil {
		t.Replacements = make([]Replacement, len(file.Replacements))
		for i, r := range file.Replacements {
			t.Replacements[i] = Replacement{Formal: r.Formal, Casual: r.Casual}
		}
	}
	if file.Contractions != nil {
		t.Contractions = make([]Contraction, len(file.Contractions))
		for i, c := range file.Contractions {
			t.Contractions[i] = Contraction{Expanded: c.Expanded, Contracted: c.Contracted}
		}
	}
	if file.VoiceMarkers != nil {
		t.VoiceMarkers = file.VoiceMarkers
	}
	if file.Hedges != nil {
		t.Hedges = file.Hedges
	}
	if file.Questions != nil {
		t.Questions = file.Questions
	}
	if file.Asides != nil {
		t.Asides = file.Asides
	}
	if file.TriadNouns != nil {
		t.TriadNouns = file.TriadNouns
	}
	if file.Repetitions != nil {
		t.Repetitions = make([]Repetition, len(file.Repetitions))
		for i, r := range file.Repetitions {
			t.Repetitions[i] = Repetition{Trigger: r.Trigger, Emphasis: r.Emphasis}
		}
	}

	return New(t), nil
}

// Cliches returns the cliche phrases, longest first.
func (l *Lexicon) Cliches() []string { return l.cliches }

// Replacements returns the formal -> casual table, longest formal term first.
func (l *Lexicon) Replacements() []Replacement { return l.replacements }

// Contractions returns the expanded -> contracted table, longest phrase first.
func (l *Lexicon) Contractions() []Contraction { return l.contractions }

// VoiceMarkers returns the voice-marker pool.
func (l *Lexicon) VoiceMarkers() []string { return l.voiceMarkers }

// Hedges returns the hedging-word pool.
func (l *Lexicon) Hedges() []string { return l.hedges }

// Questions returns the rhetorical-question pool.
func (l *Lexicon) Questions() []string { return l.questions }

// Asides returns the parenthetical-aside pool.
func (l *Lexicon) Asides() []string { return l.asides }

// TriadNouns returns the nouns that trigger rule-of-three correction.
func (l *Lexicon) TriadNouns() []string { return l.triadNouns }

// Repetitions returns the mild-repetition trigger table.
func (l *Lexicon) Repetitions() []Repetition { return l.repetitions }

// HasHedge reports whether text already contains one of the hedge terms,
// case-insensitively. Used by the hedging pass to avoid double-hedging.
func (l *Lexicon) HasHedge(text string) bool {
	lower := strings.ToLower(text)
	for _, h := range l.hedges {
		if strings.Contains(lower, strings.ToLower(h)) {
			return true
		}
	}
	return false
}

// Stats returns table sizes, mostly for diagnostics and CLI output.
func (l *Lexicon) Stats() Stats {
	return Stats{
		Cliches:      len(l.cliches),
		Replacements: len(l.replacements),
		Contractions: len(l.contractions),
		PoolEntries:  len(l.voiceMarkers) + len(l.hedges) + len(l.questions) + len(l.asides),
		TriadNouns:   len(l.triadNouns),
		Repetitions:  len(l.repetitions),
	}
}

// Stats holds lexicon table sizes.
type Stats struct {
	Cliches      int
	Replacements int
	Contractions int
	PoolEntries  int
	TriadNouns   int
	Repetitions  int
}
