package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "reel")
	var s sample
	if err := Load(writeFile(t, "name: ${SAMPLE_NAME}\nport: 80\n"), &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "reel" || s.Port != 80 {
		t.Errorf("sample = %+v", s)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	var s sample
	err := Load(writeFile(t, "name: x\n"), &s)
	if err == nil || !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("err = %v, want validation failure", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	var s sample
	if err := Load(writeFile(t, "name: [unterminated\n"), &s); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadOrDefault(t *testing.T) {
	s := sample{Name: "default", Port: 1}
	loaded, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"), &s)
	if err != nil || loaded {
		t.Fatalf("missing file: loaded = %v, err = %v", loaded, err)
	}
	if s.Name != "default" {
		t.Errorf("name = %q, want default kept", s.Name)
	}

	loaded, err = LoadOrDefault(writeFile(t, "port: 9\n"), &s)
	if err != nil || !loaded {
		t.Fatalf("existing file: loaded = %v, err = %v", loaded, err)
	}
	if s.Port != 9 || s.Name != "default" {
		t.Errorf("sample = %+v", s)
	}
}
