package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/humantone/humantone/pkg/humantone/rewrite"
)

// PipelineFile is the YAML shape of a pipeline configuration. Every field is
// optional; omitted fields take the documented defaults (all passes enabled,
// default frequencies).
//
// Example:
//
//	passes:
//	  voice_markers: false
//	  personal_asides: false
//	frequencies:
//	  starter: 0.12
//	  hedge: 0.0
type PipelineFile struct {
	Passes struct {
		ClicheRemoval       *bool `yaml:"cliche_removal"`
		CasualVocabulary    *bool `yaml:"casual_vocabulary"`
		Contractions        *bool `yaml:"contractions"`
		RuleOfThree         *bool `yaml:"rule_of_three"`
		SentenceVariation   *bool `yaml:"sentence_variation"`
		CasualStarters      *bool `yaml:"casual_starters"`
		VoiceMarkers        *bool `yaml:"voice_markers"`
		Hedging             *bool `yaml:"hedging"`
		RhetoricalQuestions *bool `yaml:"rhetorical_questions"`
		PersonalAsides      *bool `yaml:"personal_asides"`
		MildRepetition      *bool `yaml:"mild_repetition"`
	} `yaml:"passes"`
	Frequencies struct {
		Split      *float64 `yaml:"split"`
		Starter    *float64 `yaml:"starter"`
		Voice      *float64 `yaml:"voice"`
		Hedge      *float64 `yaml:"hedge"`
		Question   *float64 `yaml:"question"`
		Aside      *float64 `yaml:"aside"`
		Repetition *float64 `yaml:"repetition"`
	} `yaml:"frequencies"`
}

// LoadPipeline loads a pipeline configuration from a YAML file, layered over
// rewrite.DefaultConfig.
func LoadPipeline(path string) (rewrite.Config, error) {
	cfg := rewrite.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var file PipelineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, err
	}

	setBool(&cfg.RemoveCliches, file.Passes.ClicheRemoval)
	setBool(&cfg.CasualizeVocabulary, file.Passes.CasualVocabulary)
	setBool(&cfg.ApplyContractions, file.Passes.Contractions)
	setBool(&cfg.FixRuleOfThree, file.Passes.RuleOfThree)
	setBool(&cfg.VarySentenceLength, file.Passes.SentenceVariation)
	setBool(&cfg.CasualStarters, file.Passes.CasualStarters)
	setBool(&cfg.InjectVoice, file.Passes.VoiceMarkers)
	setBool(&cfg.InjectHedging, file.Passes.Hedging)
	setBool(&cfg.InjectQuestions, file.Passes.RhetoricalQuestions)
	setBool(&cfg.InjectAsides, file.Passes.PersonalAsides)
	setBool(&cfg.InjectRepetition, file.Passes.MildRepetition)

	setFloat(&cfg.SplitFrequency, file.Frequencies.Split)
	setFloat(&cfg.StarterFrequency, file.Frequencies.Starter)
	setFloat(&cfg.VoiceFrequency, file.Frequencies.Voice)
	setFloat(&cfg.HedgeFrequency, file.Frequencies.Hedge)
	setFloat(&cfg.QuestionFrequency, file.Frequencies.Question)
	setFloat(&cfg.AsideFrequency, file.Frequencies.Aside)
	setFloat(&cfg.RepetitionFrequency, file.Frequencies.Repetition)

	if err := cfg.Validate(); err != nil {
		return rewrite.Config{}, err
	}
	return cfg, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
