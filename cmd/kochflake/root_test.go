package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPoints(t *testing.T) {
	out, err := run(t, "points", "--level", "0")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d points, want 4:\n%s", len(lines), out)
	}
	if lines[0] != "150 400" || lines[3] != "150 400" {
		t.Errorf("outline does not start and end at (150, 400):\n%s", out)
	}

	out, err = run(t, "points", "--level", "2")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 49 {
		t.Errorf("got %d points at level 2, want 49", n)
	}
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flake.png")
	if _, err := run(t, "render", "--level", "2", "--width", "80", "--height", "60", "--output", path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("image is %v, want 80x60", b)
	}
}

func TestLevelOutOfRange(t *testing.T) {
	for _, lvl := range []string{"-1", "11"} {
		if _, err := run(t, "points", "--level", lvl); err == nil {
			t.Errorf("level %s accepted", lvl)
		}
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("KOCH_LEVEL", "2")
	out, err := run(t, "points")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 49 {
		t.Errorf("got %d points with KOCH_LEVEL=2, want 49", n)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "koch.yaml")
	if err := os.WriteFile(cfg, []byte("level: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "points", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 49 {
		t.Errorf("got %d points with level 2 from the config file, want 49", n)
	}
}
