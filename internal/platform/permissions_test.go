package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeScript(t *testing.T, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build_debug.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), mode); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSetModeIgnoresUmask(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on windows")
	}
	path := writeScript(t, 0600)

	if err := SetMode(path, ExecMode); err != nil {
		t.Fatalf("SetMode() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != ExecMode {
		t.Errorf("mode = %o, want %o", perm, ExecMode)
	}
}

func TestSetModeMissingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on windows")
	}
	if err := SetMode(filepath.Join(t.TempDir(), "nope.sh"), ExecMode); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on windows")
	}
	tests := []struct {
		name string
		mode os.FileMode
		want bool
	}{
		{"script", 0755, true},
		{"owner only", 0700, true},
		{"plain file", 0644, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, 0600)
			if err := SetMode(path, tt.mode); err != nil {
				t.Fatal(err)
			}
			got, err := IsExecutable(path)
			if err != nil {
				t.Fatalf("IsExecutable() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsExecutable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsExecutableRejectsDirectory(t *testing.T) {
	if _, err := IsExecutable(t.TempDir()); err == nil {
		t.Error("expected error for a directory")
	}
}
