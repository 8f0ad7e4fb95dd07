//go:build e2e

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var corrnetBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "corrnet-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}
	defer os.RemoveAll(tmp)

	corrnetBin = filepath.Join(tmp, "corrnet")
	build := exec.Command("go", "build", "-o", corrnetBin, ".")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		panic("failed to build corrnet: " + err.Error())
	}

	os.Exit(m.Run())
}

// runCorrnet executes the corrnet binary with an isolated HOME directory.
func runCorrnet(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	cmd := exec.Command(corrnetBin, args...)
	home := t.TempDir()
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"NO_COLOR=1",
	)

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run corrnet %v: %v", args, err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	content := "Gene Symbol,Tumor,PCC\n" +
		"TP53,Breast,0.91\n" +
		"BRCA1,Breast,0.85\n" +
		"EGFR,Lung,0.88\n" +
		"KRAS,Lung,0.45\n"
	path := filepath.Join(t.TempDir(), "normal.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, _, code := runCorrnet(t, "--version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "corrnet") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestRenderProducesArtifact(t *testing.T) {
	input := writeSampleCSV(t)
	output := filepath.Join(t.TempDir(), "net.html")

	out, stderr, code := runCorrnet(t, "render", "-i", input, "-o", output, "--seed", "1")
	if code != 0 {
		t.Fatalf("render failed (%d): %s %s", code, out, stderr)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if !strings.Contains(string(data), `"id":"TP53"`) {
		t.Error("payload missing qualifying gene")
	}
	if strings.Contains(string(data), `"id":"KRAS"`) {
		t.Error("below-threshold gene leaked into payload")
	}
}

func TestRenderMissingInput(t *testing.T) {
	_, _, code := runCorrnet(t, "render", "-i", "does-not-exist.csv", "-o", filepath.Join(t.TempDir(), "x.html"))
	if code == 0 {
		t.Fatal("expected non-zero exit for missing input")
	}
}

func TestStats(t *testing.T) {
	input := writeSampleCSV(t)

	out, _, code := runCorrnet(t, "stats", "-i", input)
	if code != 0 {
		t.Fatalf("stats failed: %d", code)
	}
	if !strings.Contains(out, "Breast") || !strings.Contains(out, "Lung") {
		t.Errorf("stats output missing tissues: %q", out)
	}
}

func TestExportDOT(t *testing.T) {
	input := writeSampleCSV(t)

	out, _, code := runCorrnet(t, "export", "--format", "dot", "-i", input)
	if code != 0 {
		t.Fatalf("export failed: %d", code)
	}
	if !strings.Contains(out, "graph corrnet") {
		t.Errorf("missing DOT header: %q", out)
	}
}
