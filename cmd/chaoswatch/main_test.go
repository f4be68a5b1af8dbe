package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderSaveListPlot(t *testing.T) {
	dir := t.TempDir()
	gifPath := filepath.Join(dir, "out.gif")
	data := filepath.Join(dir, "runs")

	out, err := execute(t, "render", "--frames", "4", "-o", gifPath, "--save", "--data", data, "--preset", "watchy")
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if !strings.Contains(out, "rendered 4 frames") || !strings.Contains(out, "saved run: ") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(gifPath); err != nil {
		t.Fatalf("gif not written: %v", err)
	}

	out, err = execute(t, "list", "--data", data)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "watchy") {
		t.Errorf("list missing run:\n%s", out)
	}

	runID := out[strings.Index(out, "lorenz_"):]
	runID = strings.Fields(runID)[0]
	out, err = execute(t, "plot", runID, "--data", data)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if !strings.Contains(out, "z vs frame") {
		t.Errorf("plot output:\n%s", out)
	}
}

func TestRenderParallelWorkers(t *testing.T) {
	gifPath := filepath.Join(t.TempDir(), "par.gif")
	out, err := execute(t, "render", "--frames", "3", "--workers", "2", "--no-overlay", "-o", gifPath)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if !strings.Contains(out, "rendered 3 frames") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFlagValidation(t *testing.T) {
	if _, err := execute(t, "render", "--steps", "0", "-o", filepath.Join(t.TempDir(), "x.gif")); err == nil {
		t.Error("expected error for zero steps per frame")
	}
	if _, err := execute(t, "render", "--preset", "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestConfigFileOverlaysPreset(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(cfgPath, []byte("frames: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "render", "--config", cfgPath, "--preset", "slow", "-o", filepath.Join(dir, "c.gif"))
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if !strings.Contains(out, "rendered 2 frames") {
		t.Errorf("config frames not applied:\n%s", out)
	}

	out, err = execute(t, "render", "--config", cfgPath, "--frames", "1", "-o", filepath.Join(dir, "d.gif"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "rendered 1 frames") {
		t.Errorf("flag should override config:\n%s", out)
	}
}

func TestSVG(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"svg", "--frame", "3", "-o", filepath.Join(dir, "a.svg")},
		{"svg", "--trajectory", "-o", filepath.Join(dir, "b.svg")},
	} {
		if _, err := execute(t, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		data, err := os.ReadFile(args[len(args)-1])
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(string(data), "</svg>") {
			t.Errorf("%s is not an svg document", args[len(args)-1])
		}
	}
}

func TestAnalyzeAndPresets(t *testing.T) {
	out, err := execute(t, "analyze", "--transient", "2", "--time", "20")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out, "regime: chaotic") {
		t.Errorf("analyze output:\n%s", out)
	}

	out, err = execute(t, "analyze", "--sweep", "rho", "--from", "10", "--to", "28", "--n", "3", "--transient", "1", "--time", "5")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if !strings.Contains(out, "LYAPUNOV") || !strings.Contains(out, "28.0000") {
		t.Errorf("sweep output:\n%s", out)
	}

	out, err = execute(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, name := range []string{"demo", "long", "slow", "watchy"} {
		if !strings.Contains(out, name) {
			t.Errorf("presets missing %s", name)
		}
	}
}
