package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/streamline-dev/streamline/internal/project"
)

var defaults = Answers{Name: "demo", Edition: "17", Docs: project.DocsNone, Tests: project.TestsNone}

func TestRunInteractive_Selections(t *testing.T) {
	// Name "engine", edition #5 (20), doxygen, gtest.
	input := "engine\n5\n2\n2\n"
	var output bytes.Buffer

	got, err := RunInteractive(strings.NewReader(input), &output, defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Answers{Name: "engine", Edition: "20", Docs: project.DocsDoxygen, Tests: project.TestsGTest}
	if *got != want {
		t.Errorf("answers = %+v, want %+v", *got, want)
	}
	if !strings.Contains(output.String(), "Select C++ edition:") {
		t.Errorf("output missing edition menu:\n%s", output.String())
	}
}

func TestRunInteractive_DefaultsOnEnter(t *testing.T) {
	got, err := RunInteractive(strings.NewReader("\n\n\n\n"), &bytes.Buffer{}, defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != defaults {
		t.Errorf("answers = %+v, want defaults %+v", *got, defaults)
	}
}

func TestRunInteractive_DefaultMarked(t *testing.T) {
	var output bytes.Buffer
	if _, err := RunInteractive(strings.NewReader("\n\n\n\n"), &output, defaults); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output.String(), " *4) 17") {
		t.Errorf("default edition not marked:\n%s", output.String())
	}
}

func TestRunInteractive_InvalidName(t *testing.T) {
	_, err := RunInteractive(strings.NewReader("My Project\n"), &bytes.Buffer{}, defaults)
	if !project.IsKind(err, project.KindInvalidName) {
		t.Errorf("error = %v, want invalid name", err)
	}
}

func TestRunInteractive_InvalidSelection(t *testing.T) {
	tests := []string{"demo\n9\n", "demo\nabc\n", "demo\n0\n"}
	for _, input := range tests {
		if _, err := RunInteractive(strings.NewReader(input), &bytes.Buffer{}, defaults); err == nil {
			t.Errorf("input %q: expected error", input)
		}
	}
}

func TestRunInteractive_EOF(t *testing.T) {
	if _, err := RunInteractive(strings.NewReader("demo\n"), &bytes.Buffer{}, defaults); err == nil {
		t.Error("expected error when input ends early")
	}
}

func TestRunInteractive_LastLineWithoutNewline(t *testing.T) {
	got, err := RunInteractive(strings.NewReader("demo\n1\n1\n2"), &bytes.Buffer{}, defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Edition != "98" || got.Tests != project.TestsGTest {
		t.Errorf("answers = %+v", *got)
	}
}

func TestRunInteractive_UnknownDefaultEdition(t *testing.T) {
	bad := defaults
	bad.Edition = "15"

	var output bytes.Buffer
	if _, err := RunInteractive(strings.NewReader("demo\n\n\n\n"), &output, bad); err == nil {
		t.Fatal("expected error when accepting a default that is not an edition")
	}
	if strings.Contains(output.String(), "*1) 98") {
		t.Errorf("98 marked as default for edition 15:\n%s", output.String())
	}
	if !strings.Contains(output.String(), "Enter number [1-7]: ") {
		t.Errorf("edition menu offered a default:\n%s", output.String())
	}

	got, err := RunInteractive(strings.NewReader("demo\n6\n\n\n"), &bytes.Buffer{}, bad)
	if err != nil {
		t.Fatalf("explicit choice: %v", err)
	}
	if got.Edition != "23" {
		t.Errorf("edition = %q, want 23", got.Edition)
	}
}
