package config

import (
	"fmt"

	"github.com/humantone/humantone/pkg/humantone/lexicon"
	"github.com/humantone/humantone/pkg/humantone/rewrite"
)

// Loader loads the engine's configuration files and constructs components.
// Empty paths fall back to compiled-in defaults.
type Loader struct {
	LexiconPath  string
	PipelinePath string
}

// Components holds the loaded configuration components.
type Components struct {
	Lexicon *lexicon.Lexicon
	Config  rewrite.Config
}

// Load reads the configuration files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	if l.PipelinePath != "" {
		cfg, err := LoadPipeline(l.PipelinePath)
		if err != nil {
			return nil, fmt.Errorf("load pipeline config: %w", err)
		}
		comp.Config = cfg
	} else {
		comp.Config = rewrite.DefaultConfig()
	}

	return comp, nil
}
