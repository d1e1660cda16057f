package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPipelineOverrides(t *testing.T) {
	path := writeFile(t, "pipeline.yaml", `
passes:
  voice_markers: false
  personal_asides: false
frequencies:
  starter: 0.12
  hedge: 0.0
`)

	cfg, err := LoadPipeline(path)
	if err != nil {
		t.Fatalf("LoadPipeline: %v", err)
	}

	if cfg.InjectVoice || cfg.InjectAsides {
		t.Error("disabled passes should be off")
	}
	if !cfg.RemoveCliches || !cfg.InjectHedging {
		t.Error("omitted passes should keep their defaults")
	}
	if cfg.StarterFrequency != 0.12 {
		t.Errorf("StarterFrequency = %v, want 0.12", cfg.StarterFrequency)
	}
	if cfg.HedgeFrequency != 0 {
		t.Errorf("HedgeFrequency = %v, want 0", cfg.HedgeFrequency)
	}
	if cfg.SplitFrequency != 0.3 {
		t.Errorf("omitted SplitFrequency should keep its default, got %v", cfg.SplitFrequency)
	}
}

func TestLoadPipelineRejectsInvalidFrequency(t *testing.T) {
	path := writeFile(t, "pipeline.yaml", "frequencies:\n  voice: 1.5\n")
	if _, err := LoadPipeline(path); err == nil {
		t.Error("out-of-range frequency should be rejected")
	}
}

func TestLoadPipelineMissingFile(t *testing.T) {
	if _, err := LoadPipeline(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoaderDefaults(t *testing.T) {
	var l Loader
	comp, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Lexicon == nil {
		t.Fatal("empty lexicon path should yield the default lexicon")
	}
	if len(comp.Lexicon.Cliches()) == 0 {
		t.Error("default lexicon should carry cliches")
	}
	if err := comp.Config.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoaderWithFiles(t *testing.T) {
	lexPath := writeFile(t, "lexicon.yaml", "cliches:\n  - \"At this juncture\"\n")
	cfgPath := writeFile(t, "pipeline.yaml", "passes:\n  contractions: false\n")

	l := Loader{LexiconPath: lexPath, PipelinePath: cfgPath}
	comp, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := comp.Lexicon.Cliches(); len(got) != 1 || got[0] != "At this juncture" {
		t.Errorf("lexicon cliches = %v", got)
	}
	if comp.Config.ApplyContractions {
		t.Error("contractions pass should be disabled by the file")
	}
}

func TestLoaderBadLexiconPath(t *testing.T) {
	l := Loader{LexiconPath: filepath.Join(t.TempDir(), "absent.yaml")}
	if _, err := l.Load(); err == nil {
		t.Error("unreadable lexicon path should error")
	}
}
