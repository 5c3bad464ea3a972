package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuircle/internal/config"
	"github.com/verte-zerg/tuircle/internal/strokefile"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestSampleThenScore(t *testing.T) {
	out := execute(t, "sample", "--seed", "7", "--points", "60", "--noise", "0")
	points, err := strokefile.Read(strings.NewReader(out))
	if err != nil {
		t.Fatalf("sample output is not a stroke file: %v", err)
	}
	if len(points) != 60 {
		t.Fatalf("expected 60 points, got %d", len(points))
	}

	dir := t.TempDir()
	strokePath := filepath.Join(dir, "circle.txt")
	if err := os.WriteFile(strokePath, []byte(out), 0o644); err != nil {
		t.Fatalf("write stroke: %v", err)
	}
	pngPath := filepath.Join(dir, "circle.png")
	report := execute(t, "score", strokePath, "--preview=false", "--locale", "en-US", "--png", pngPath)
	if !strings.Contains(report, "/100") || !strings.Contains(report, "Perfect circle!") {
		t.Fatalf("unexpected report:\n%s", report)
	}
	if info, err := os.Stat(pngPath); err != nil || info.Size() == 0 {
		t.Fatalf("expected png at %s: %v", pngPath, err)
	}
}

func TestSampleRejectsBadFlags(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"sample", "--shape", "triangle"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected unknown shape error")
	}
}

func TestLocalesListsSupported(t *testing.T) {
	t.Setenv("LC_ALL", "es_ES.UTF-8")
	out := execute(t, "locales")
	if !strings.Contains(out, "en-US") || !strings.Contains(out, "es-ES *") {
		t.Fatalf("unexpected locales output:\n%s", out)
	}
}

func TestApplyConfigRespectsChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var locale string
	var grid bool
	var size int
	cmd.Flags().StringVar(&locale, "locale", "", "")
	cmd.Flags().BoolVar(&grid, "grid", true, "")
	cmd.Flags().IntVar(&size, "grid-size", 8, "")
	if err := cmd.Flags().Parse([]string{"--locale", "en-US"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	fromFile := "es-ES"
	off := false
	twelve := 12
	applyStringConfig(cmd, "locale", &locale, &fromFile)
	applyBoolConfig(cmd, "grid", &grid, &off)
	applyIntConfig(cmd, "grid-size", &size, &twelve)
	applyIntConfig(cmd, "grid-size", &size, nil)
	if locale != "en-US" {
		t.Fatalf("expected flag to win, got %q", locale)
	}
	if grid || size != 12 {
		t.Fatalf("expected config values, got grid=%v size=%d", grid, size)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template is not valid TOML: %v", err)
	}
	uncommented := strings.ReplaceAll(defaultConfigTemplate(), "# locale", "locale")
	uncommented = strings.ReplaceAll(uncommented, "# grid-size", "grid-size")
	if _, err := toml.Decode(uncommented, &cfg); err != nil {
		t.Fatalf("uncommented template is not valid TOML: %v", err)
	}
	if cfg.Play.Locale == nil || *cfg.Play.Locale != "es-ES" {
		t.Fatalf("unexpected locale %v", cfg.Play.Locale)
	}
	if cfg.Play.GridSize == nil || *cfg.Play.GridSize != 8 {
		t.Fatalf("unexpected grid size %v", cfg.Play.GridSize)
	}
}

func TestRenderPreviewFitsStroke(t *testing.T) {
	out := execute(t, "sample", "--seed", "1", "--points", "40")
	points, err := strokefile.Read(strings.NewReader(out))
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	rows := renderPreview(points)
	if len(rows) < 4 {
		t.Fatalf("expected at least 4 rows, got %d", len(rows))
	}
	if strings.Trim(strings.Join(rows, ""), "⠀") == "" {
		t.Fatalf("expected dots in the preview")
	}
}
