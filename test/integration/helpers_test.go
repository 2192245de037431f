//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngHeader starts a file that is detected as binary even though it carries
// template syntax.
const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // HOME, so no user settings leak in
	SkeletonDir string // a complete skeleton
	OutputDir   string // render target, not created up front
}

// setupTestEnv creates a skeleton for a small Rust CLI and an empty output
// location below fresh temp directories.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:     t.TempDir(),
		SkeletonDir: filepath.Join(t.TempDir(), "rust-cli"),
		OutputDir:   filepath.Join(t.TempDir(), "out"),
	}
	t.Setenv("HOME", env.HomeDir)

	writeFile(t, filepath.Join(env.SkeletonDir, "skelly.yaml"), `template_directory: template
requires: ">= 1.0.0"
exclude:
  - "**/.DS_Store"
inputs:
  - name: crate
    description: Crate name
  - name: edition
    default: 2021
    options: [2018, 2021, 2024]
  - name: license
    default: MIT
`)

	tmpl := filepath.Join(env.SkeletonDir, "template")
	writeFile(t, filepath.Join(tmpl, "Cargo.toml"), `[package]
name = "{{ crate }}"
edition = "{{ edition }}"
license = "{{ license }}"
`)
	writeFile(t, filepath.Join(tmpl, "src", "main.rs"), `fn main() {
    println!("hello from {{ crate }}");
}
`)
	writeFile(t, filepath.Join(tmpl, "bin", "{{ crate }}.sh"), "#!/bin/sh\nexec cargo run --bin {{ crate }} \"$@\"\n")
	if err := os.Chmod(filepath.Join(tmpl, "bin", "{{ crate }}.sh"), 0755); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	writeFile(t, filepath.Join(tmpl, "assets", "logo.png"), pngHeader+"{{ crate }}")
	writeFile(t, filepath.Join(tmpl, ".DS_Store"), "{{ not a template")

	return env
}

// writeFile creates a file with parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertMode fails if the file's permission bits differ from want.
func assertMode(t *testing.T, path string, want os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("stat %s: %v", path, err)
		return
	}
	if got := info.Mode().Perm(); got != want {
		t.Errorf("mode of %s = %o, want %o", path, got, want)
	}
}
