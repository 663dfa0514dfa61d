package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of c and its children to its default so
// package-level flag variables do not leak between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBridgeAnalyzeDefault(t *testing.T) {
	out, err := run(t, "bridge", "analyze", "--ascii=false")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{"SUPPORT REACTIONS", "LOAD BALANCE", "1.0D + 1.0L", "20 m + 25 m + 20 m", "✓"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "deflection (mm) along the girder") {
		t.Error("ASCII diagrams printed with --ascii=false")
	}
}

func TestBridgeAnalyzeFlags(t *testing.T) {
	// 10 m span, 10 kN/m and 100 kN at midspan: each reaction is 100 kN.
	out, err := run(t, "bridge", "analyze",
		"--spans", "10", "--dead", "10", "--live", "0", "--point", "5:100", "--subdivisions", "4")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got := strings.Count(out, "100.00"); got < 2 {
		t.Errorf("expected two 100.00 kN reactions, output:\n%s", out)
	}
	if !strings.Contains(out, "200.00 kN") {
		t.Errorf("expected 200 kN total load, output:\n%s", out)
	}
}

func TestBridgeAnalyzeFactored(t *testing.T) {
	out, err := run(t, "bridge", "analyze", "--combo", "governing", "--ascii=false")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out, "1.2D + 1.6L") {
		t.Errorf("expected 1.2D + 1.6L to govern, output:\n%s", out)
	}
}

func TestBridgeAnalyzeInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad point", []string{"--point", "abc"}},
		{"point off bridge", []string{"--spans", "10", "--point", "50:100"}},
		{"unknown combo", []string{"--combo", "9"}},
		{"missing config", []string{"--config", "does-not-exist.yaml"}},
		{"all rollers", []string{"--supports", "roller,roller,roller,roller"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"bridge", "analyze", "--ascii=false"}, tt.args...)
			if _, err := run(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBridgeInitAndAnalyze(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridge.toml")

	if _, err := run(t, "bridge", "init", "--output", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := run(t, "bridge", "init", "--output", path); err == nil {
		t.Error("expected error when file exists")
	}
	if _, err := run(t, "bridge", "init", "--output", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out, err := run(t, "bridge", "analyze", "--config", path, "--ascii=false")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out, "three-span continuous girder") {
		t.Errorf("bridge name missing from output:\n%s", out)
	}
}

func TestBridgeAnalyzePlot(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "bridge", "analyze", "--plot", filepath.Join(dir, "bridge.png"))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, suffix := range []string{"-reactions", "-deflection", "-moment"} {
		if _, err := os.Stat(filepath.Join(dir, "bridge"+suffix+".png")); err != nil {
			t.Errorf("chart %s not written: %v", suffix, err)
		}
	}
	if !strings.Contains(out, "deflection (mm) along the girder") {
		t.Error("expected ASCII diagrams by default")
	}
}

func TestParsePointLoad(t *testing.T) {
	tests := []struct {
		in      string
		pos, f  float64
		wantErr bool
	}{
		{"20:125", 20, 125e3, false},
		{" 12.5 : 80 ", 12.5, 80e3, false},
		{"20", 0, 0, true},
		{"x:1", 0, 0, true},
		{"1:y", 0, 0, true},
	}
	for _, tt := range tests {
		pl, err := parsePointLoad(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePointLoad(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (pl.Position != tt.pos || pl.Force != tt.f) {
			t.Errorf("parsePointLoad(%q) = %+v", tt.in, pl)
		}
	}
}

func TestSpanCheck(t *testing.T) {
	out, err := run(t, "span", "--length", "20", "--load", "26.25", "--elements", "4")
	if err != nil {
		t.Fatalf("span: %v", err)
	}
	if !strings.Contains(out, "262.500") {
		t.Errorf("expected 262.5 kN reactions, output:\n%s", out)
	}
	if strings.Contains(out, "differs") {
		t.Errorf("solver disagrees with closed form:\n%s", out)
	}

	if _, err := run(t, "span", "--elements", "3"); err == nil {
		t.Error("expected error for odd element count")
	}
}

func TestSectionProperties(t *testing.T) {
	out, err := run(t, "section", "properties", "--width", "1000", "--height", "1200")
	if err != nil {
		t.Fatalf("section properties: %v", err)
	}
	for _, want := range []string{"1200000 mm²", "1.2000 m²", "0.14400 m⁴"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "section", "properties"); err == nil {
		t.Error("expected error without --file or dimensions")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "gospan v") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestBridgeAnalyzeExamples(t *testing.T) {
	for _, name := range []string{"bridge.yaml", "two-span-tgirder.toml"} {
		t.Run(name, func(t *testing.T) {
			plot := filepath.Join(t.TempDir(), "chart.svg")
			out, err := run(t, "bridge", "analyze", "--config", filepath.Join("..", "examples", name), "--plot", plot, "--ascii=false")
			if err != nil {
				t.Fatalf("analyze %s: %v", name, err)
			}
			if !strings.Contains(out, "✓") {
				t.Errorf("expected balanced result:\n%s", out)
			}
		})
	}
}
