package scaffold

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerify_CleanTree(t *testing.T) {
	root := t.TempDir()
	cat := miniCatalog()

	if _, err := Build(io.Discard, root, cat, Options{}); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var out bytes.Buffer
	report, err := Verify(&out, root, cat)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if !report.Clean() {
		t.Errorf("expected clean report, got issues: %v", report.Issues)
	}
	if report.OK != 3 {
		t.Errorf("OK = %d, want 3", report.OK)
	}
	for _, line := range outputLines(t, &out) {
		if !strings.HasPrefix(line, "  [ OK ] ") {
			t.Errorf("line %q should be an OK entry", line)
		}
	}
}

func TestVerify_MissingEntry(t *testing.T) {
	root := t.TempDir()
	cat := miniCatalog()

	if _, err := Build(io.Discard, root, cat, Options{}); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if err := os.Remove(filepath.Join(root, "a", "b", "c.txt")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	report, err := Verify(&out, root, cat)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if report.Clean() {
		t.Fatal("expected issues, got clean report")
	}
	if len(report.Issues) != 1 {
		t.Fatalf("issues = %d, want 1: %v", len(report.Issues), report.Issues)
	}
	if report.Issues[0].Problem != "missing" {
		t.Errorf("Problem = %q, want %q", report.Issues[0].Problem, "missing")
	}
	if !strings.Contains(out.String(), "  [MISS] a/b/c.txt") {
		t.Errorf("output missing MISS line:\n%s", out.String())
	}
}

func TestVerify_TypeMismatch(t *testing.T) {
	root := t.TempDir()
	cat := miniCatalog()

	if _, err := Build(io.Discard, root, cat, Options{}); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Swap the placeholder file for a directory.
	path := filepath.Join(root, "a", "b", "c.txt")
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	report, err := Verify(&out, root, cat)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if len(report.Issues) != 1 {
		t.Fatalf("issues = %d, want 1: %v", len(report.Issues), report.Issues)
	}
	if report.Issues[0].Problem != "expected file, found directory" {
		t.Errorf("Problem = %q, want type mismatch", report.Issues[0].Problem)
	}
	if !strings.Contains(out.String(), "  [TYPE] a/b/c.txt") {
		t.Errorf("output missing TYPE line:\n%s", out.String())
	}
}

func TestVerify_EmptyRoot(t *testing.T) {
	root := t.TempDir()
	cat := miniCatalog()

	var out bytes.Buffer
	report, err := Verify(&out, root, cat)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if report.OK != 0 {
		t.Errorf("OK = %d, want 0", report.OK)
	}
	if len(report.Issues) != 3 {
		t.Errorf("issues = %d, want 3", len(report.Issues))
	}
}

func TestVerify_DoesNotCreate(t *testing.T) {
	root := t.TempDir()

	var out bytes.Buffer
	if _, err := Verify(&out, root, miniCatalog()); err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("verify created entries: %v", entries)
	}
}
