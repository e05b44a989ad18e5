package config

import (
	"ember-lang/internal/diag"
	"ember-lang/internal/lexer"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ColumnReset {
		t.Error("column reset should be off by default")
	}
	if cfg.Output != OutputText || !cfg.Color || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "ember.toml", `
column_reset = true
output = "json"
color = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.ColumnReset || cfg.Output != OutputJSON || cfg.Color {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("missing keys should keep defaults, got log_level %q", cfg.LogLevel)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "ember.yml", "log_level: debug\nhistory_file: /tmp/h\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.HistoryFile != "/tmp/h" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Output != OutputText {
		t.Errorf("missing keys should keep defaults, got output %q", cfg.Output)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "ember.json", "{}")
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "ember.toml", `output = "xml"`)
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	path = writeFile(t, "ember.yaml", "log_level: loud\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "ember.toml", "output = \n")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Resolve("")
	if err != nil || cfg.Output != OutputText {
		t.Fatalf("expected defaults, got %+v %v", cfg, err)
	}

	path := writeFile(t, "env.toml", `output = "json"`)
	t.Setenv(EnvVar, path)
	cfg, err = Resolve("")
	if err != nil || cfg.Output != OutputJSON {
		t.Errorf("expected config from %s, got %+v %v", EnvVar, cfg, err)
	}
}

func TestLexerOptions(t *testing.T) {
	cfg := Default()
	cfg.ColumnReset = true

	errs := diag.NewBucket[lexer.Error]()
	tokens := lexer.New("a\nb", errs, cfg.LexerOptions()...).Tokenize()
	if len(tokens) != 2 || tokens[1].Span.Col != 1 {
		t.Errorf("expected b at column 1 with column_reset, got %v", tokens)
	}
}
