package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/humantone/humantone/pkg/humantone/lexicon"
	"github.com/humantone/humantone/pkg/humantone/score"
)

func main() {
	var (
		input      = flag.String("input", "", "Input file (default: stdin)")
		lexiconCfg = flag.String("lexicon", "", "Optional: lexicon YAML override")
	)
	flag.Parse()

	text, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	lex := lexicon.Default()
	if *lexiconCfg != "" {
		lex, err = lexicon.LoadFromYAML(*lexiconCfg)
		if err != nil {
			log.Fatalf("load lexicon: %v", err)
		}
	}

	report := score.New(lex).Score(text)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
