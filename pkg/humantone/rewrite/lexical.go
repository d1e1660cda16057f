package rewrite

import (
	"regexp"
	"strings"
)

// removeCliches deletes every occurrence of a listed cliche phrase, plus an
// optional trailing comma or period and the whitespace after it. This pass is
// unconditional: clichés never survive, whatever the configuration says about
// the probabilistic passes.
func (p *Pipeline) removeCliches(doc string) string {
	for _, re := range p.clicheRes {
		doc = re.ReplaceAllString(doc, "")
	}
	return doc
}

// casualizeVocabulary replaces every whole-word occurrence of a formal term
// with a uniformly random casual alternative, preserving the original
// capitalization of the first letter. Terms are matched longest-first so
// "take it to the next level" wins over any shorter overlapping entry.
func (p *Pipeline) casualizeVocabulary(doc string, rng Source) string {
	for _, rule := range p.vocabRules {
		doc = rule.re.ReplaceAllStringFunc(doc, func(m string) string {
			pick := rule.casual[rng.Pick(len(rule.casual))]
			return matchCase(m, pick)
		})
	}
	return doc
}

// applyContractions rewrites every expandable phrase to its contracted form.
// Deterministic: no randomness, longest phrase first, leading capital kept.
func (p *Pipeline) applyContractions(doc string) string {
	for _, rule := range p.contractionRules {
		doc = rule.re.ReplaceAllStringFunc(doc, func(m string) string {
			return matchCase(m, rule.contracted)
		})
	}
	return doc
}

// fixRuleOfThree replaces "three <countable noun>" with "two" or "four",
// chosen at random. LLM output leans on three-item lists hard enough that
// detectors key on the pattern, so "three" never survives for these nouns.
func (p *Pipeline) fixRuleOfThree(doc string, rng Source) string {
	if p.triadRe == nil {
		return doc
	}
	return p.triadRe.ReplaceAllStringFunc(doc, func(m string) string {
		sub := p.triadRe.FindStringSubmatch(m)
		numeral := "two"
		if rng.Pick(2) == 1 {
			numeral = "four"
		}
		return matchCase(sub[1], numeral) + sub[2] + sub[3]
	})
}

func compileCliches(phrases []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		if strings.TrimSpace(phrase) == "" {
			continue
		}
		res = append(res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)+`[,.]?[ \t]*`))
	}
	return res
}

func compileTriads(nouns []string) *regexp.Regexp {
	if len(nouns) == 0 {
		return nil
	}
	quoted := make([]string, len(nouns))
	for i, n := range nouns {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`(?i)\b(three)(\s+)(` + strings.Join(quoted, "|") + `)\b`)
}
