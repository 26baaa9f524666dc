package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommandMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out", "gauge.svg")

	_, err := execute(t, "render", "-f", "svg,json,txt,svg", "-o", base, "--position", "-12", "--rows", "22", "--cols", "11")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "out", "gauge.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("gauge.svg is not an SVG document")
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "gauge.json"))
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Fingerprint string `json:"fingerprint"`
		Position    int    `json:"position"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("gauge.json: %v", err)
	}
	if doc.Position != -12 || len(doc.Fingerprint) != 64 {
		t.Errorf("gauge.json = %+v", doc)
	}

	text, err := os.ReadFile(filepath.Join(dir, "out", "gauge.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(text), "\n"); lines != 22 {
		t.Errorf("gauge.txt has %d lines, want 22", lines)
	}
}

func TestRenderCommandSingleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scale.image")
	if _, err := execute(t, "render", "-f", "png", "-o", path, "--width", "110", "--height", "220"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("output is not a PNG")
	}
}

func TestRenderCommandStdoutNeedsSingleFormat(t *testing.T) {
	if _, err := execute(t, "render", "-f", "svg,json", "-o", "-"); err == nil {
		t.Error("expected error for several formats on stdout")
	}
}
