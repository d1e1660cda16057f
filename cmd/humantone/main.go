package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/humantone/humantone/pkg/humantone"
	"github.com/humantone/humantone/pkg/humantone/config"
	"github.com/humantone/humantone/pkg/humantone/rewrite"
	"github.com/humantone/humantone/pkg/humantone/score"
	"github.com/humantone/humantone/pkg/humantone/store/sqlite"
)

type report struct {
	RunID        string       `json:"run_id"`
	Content      string       `json:"content"`
	StepsApplied []string     `json:"steps_applied"`
	WordCount    int          `json:"word_count"`
	ElapsedMs    int64        `json:"elapsed_ms"`
	Before       score.Report `json:"score_before"`
	After        score.Report `json:"score_after"`
}

func main() {
	var (
		input       = flag.String("input", "", "Input file (default: stdin)")
		output      = flag.String("output", "", "Optional: write transformed content to this file")
		lexiconCfg  = flag.String("lexicon", "", "Optional: lexicon YAML override")
		pipelineCfg = flag.String("config", "", "Optional: pipeline YAML config")
		seed        = flag.Int64("seed", 0, "Optional: PRNG seed for reproducible runs")
		dbPath      = flag.String("db", "", "Optional: SQLite run-history database")
	)
	flag.Parse()

	doc, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	loader := config.Loader{
		LexiconPath:  *lexiconCfg,
		PipelinePath: *pipelineCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	ctx := context.Background()

	opts := humantone.Options{Lexicon: components.Lexicon}
	if *seed != 0 {
		opts.NewSource = func() rewrite.Source { return rewrite.NewSource(*seed) }
	}
	if *dbPath != "" {
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open run store: %v", err)
		}
		opts.Store = st
	}

	engine := humantone.New(opts)
	defer engine.Close()

	resp, err := engine.Humanize(ctx, humantone.HumanizeRequest{
		Document: doc,
		Config:   components.Config,
	})
	if err != nil {
		log.Fatalf("humanize: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(resp.Content), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}

	out := report{
		RunID:        resp.RunID,
		Content:      resp.Content,
		StepsApplied: resp.StepsApplied,
		WordCount:    resp.WordCount,
		ElapsedMs:    resp.Elapsed.Milliseconds(),
		Before:       resp.Before,
		After:        resp.After,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode report: %v", err)
	}

	fmt.Fprintf(os.Stderr, "humanized %d words in %s (score %d -> %d)\n",
		resp.WordCount, resp.Elapsed.Round(time.Millisecond), resp.Before.Score, resp.After.Score)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
