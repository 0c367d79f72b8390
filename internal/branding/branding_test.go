package branding

import "testing"

func TestEmbeddedIdentity(t *testing.T) {
	if got := CLIName(); got != "streamline" {
		t.Errorf("CLIName() = %q, want %q", got, "streamline")
	}
	if got := HomeDir(); got != ".streamline" {
		t.Errorf("HomeDir() = %q, want %q", got, ".streamline")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"home", "STREAMLINE_HOME"},
		{"SHELL", "STREAMLINE_SHELL"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
