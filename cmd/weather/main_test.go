package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-console/internal/config"
)

type keySource string

func (s keySource) Name() string                  { return "static" }
func (s keySource) Lookup(string) (string, error) { return string(s), nil }

func TestRun_MissingKeyPrintsSetupGuide(t *testing.T) {
	t.Setenv(config.APIKeyVar, "")
	sources := []config.Source{
		config.EnvSource{},
		config.DotEnvSource{Path: filepath.Join(t.TempDir(), ".env")},
	}

	var out bytes.Buffer
	code := run(context.Background(), sources, strings.NewReader("Seoul\n"), &out, zap.NewNop())

	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if out.String() != setupGuide+"\n" {
		t.Errorf("output = %q, want only the setup guide", out.String())
	}
}

func TestRun_KeyFoundStartsLoop(t *testing.T) {
	t.Setenv("WEATHER_TIMEOUT", "")

	var out bytes.Buffer
	code := run(context.Background(), []config.Source{keySource("abc")}, strings.NewReader("quit\n"), &out, zap.NewNop())

	if code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	if strings.Contains(out.String(), setupGuide) {
		t.Errorf("setup guide printed although a key was found:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "안녕히 가세요") {
		t.Errorf("loop did not run to its farewell:\n%s", out.String())
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("WEATHER_TIMEOUT", "soon")

	var out bytes.Buffer
	code := run(context.Background(), []config.Source{keySource("abc")}, strings.NewReader(""), &out, zap.NewNop())

	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
