package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/cslint/calc"
)

func TestParse(t *testing.T) {
	data := []byte(`
[rules.commaPlacement]
enabled = false

[rules.fixBalance]
severity = "warning"
`)

	opts, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	comma := opts[calc.RuleCommas]
	if comma.Enabled == nil || *comma.Enabled {
		t.Errorf("commaPlacement.Enabled = %v, want false", comma.Enabled)
	}

	fix := opts[calc.RuleFixBalance]
	if fix.Enabled != nil {
		t.Errorf("fixBalance.Enabled = %v, want nil", fix.Enabled)
	}
	if fix.Severity != calc.SeverityWarning {
		t.Errorf("fixBalance.Severity = %q, want %q", fix.Severity, calc.SeverityWarning)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("rules = [not toml")); err == nil {
		t.Errorf("err = nil, want parse error")
	}
}

func TestLoadMissingDefault(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(cwd)

	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("len(opts) = %d, want 0", len(opts))
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("err = nil, want error for explicit missing file")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cslint.toml")
	data := []byte("[rules.ifBalance]\nseverity = \"info\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts[calc.RuleIfBalance].Severity != calc.SeverityInfo {
		t.Errorf("ifBalance.Severity = %q, want %q", opts[calc.RuleIfBalance].Severity, calc.SeverityInfo)
	}
}
