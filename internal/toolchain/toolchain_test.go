package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/streamline-dev/streamline/internal/project"
	"github.com/streamline-dev/streamline/internal/runtime"
	"github.com/streamline-dev/streamline/internal/scaffold"
)

func scaffoldProject(t *testing.T, edition string, docs project.DocsGenerator, tests project.TestFramework) project.Root {
	t.Helper()
	dir := t.TempDir()
	cfg, err := project.ValidateSyntax("demo", edition, docs, tests)
	if err != nil {
		t.Fatal(err)
	}
	plan, err := scaffold.NewPlan(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scaffold.Write(dir, plan); err != nil {
		t.Fatal(err)
	}
	root, err := project.NewRoot(dir)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func fakeLookPath(present ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, p := range present {
			if p == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", fmt.Errorf("%s: not found", name)
	}
}

func TestMinCMakeFor(t *testing.T) {
	tests := map[project.Edition]string{
		project.Edition17: "3.14",
		project.Edition20: "3.14",
		project.Edition23: "3.20",
		project.Edition26: "3.25",
	}
	for ed, want := range tests {
		if got := MinCMakeFor(ed); got != want {
			t.Errorf("MinCMakeFor(%s) = %s, want %s", ed, got, want)
		}
	}
}

func TestDoctorHealthyProject(t *testing.T) {
	root := scaffoldProject(t, "20", project.DocsDoxygen, project.TestsGTest)
	d := &Doctor{
		Root:     root,
		LookPath: fakeLookPath("sh", "cmake", "ctest", "doxygen"),
		Runner: &runtime.Recorder{Stdout: map[string]string{
			"--version": "cmake version 3.28.3\n",
		}},
	}

	report := d.Run(context.Background())
	if !report.Healthy() {
		var buf bytes.Buffer
		report.Write(&buf)
		t.Fatalf("expected healthy report:\n%s", buf.String())
	}

	var buf bytes.Buffer
	report.Write(&buf)
	out := buf.String()
	for _, want := range []string{
		"Project check:",
		"[ OK ] demo (C++20, docs: doxygen, tests: gtest)",
		"[ OK ] tools/build_docs.sh",
		"[ OK ] tools/run_tests.sh",
		"[ OK ] cmake 3.28.3 found at /usr/bin/cmake",
		"[ OK ] doxygen found at /usr/bin/doxygen",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorOldCMakeForEdition26(t *testing.T) {
	root := scaffoldProject(t, "26", project.DocsNone, project.TestsNone)
	d := &Doctor{
		Root:     root,
		LookPath: fakeLookPath("sh", "cmake"),
		Runner:   &runtime.Recorder{Stdout: map[string]string{"--version": "cmake version 3.22.1\n"}},
	}

	report := d.Run(context.Background())
	if report.Healthy() {
		t.Fatal("cmake 3.22 must fail for edition 26")
	}
	var buf bytes.Buffer
	report.Write(&buf)
	if !strings.Contains(buf.String(), "[FAIL] cmake 3.22.1 is older than the required 3.25") {
		t.Errorf("report:\n%s", buf.String())
	}
}

func TestDoctorMissingScriptAndTool(t *testing.T) {
	root := scaffoldProject(t, "17", project.DocsNone, project.TestsNone)
	if err := os.Remove(root.Join("tools", "run.sh")); err != nil {
		t.Fatal(err)
	}
	d := &Doctor{Root: root, LookPath: fakeLookPath("sh"), Runner: &runtime.Recorder{}}

	report := d.Run(context.Background())
	if report.Healthy() {
		t.Fatal("expected unhealthy report")
	}
	var buf bytes.Buffer
	report.Write(&buf)
	out := buf.String()
	if !strings.Contains(out, "[MISS] tools/run.sh") {
		t.Errorf("missing script not reported:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] cmake not found") {
		t.Errorf("missing cmake not reported:\n%s", out)
	}
	if strings.Contains(out, "doxygen") || strings.Contains(out, "ctest") {
		t.Errorf("optional tools checked for a project without them:\n%s", out)
	}
}

func TestDoctorInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	recordPath := filepath.Join(dir, project.RecordFile)
	if err := os.MkdirAll(filepath.Dir(recordPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(recordPath, []byte("name: Demo\nedition: \"15\"\ndocs: none\ntests: none\n"), 0644); err != nil {
		t.Fatal(err)
	}
	root, _ := project.NewRoot(dir)
	d := &Doctor{Root: root, LookPath: fakeLookPath("sh", "cmake"), Runner: &runtime.Recorder{Stdout: map[string]string{"--version": "cmake version 3.28.0"}}}

	report := d.Run(context.Background())
	if report.Healthy() {
		t.Fatal("invalid record must make the report unhealthy")
	}
	if report.Checks[0].Status != StatusFail || len(report.Checks[0].Details) < 2 {
		t.Errorf("record check = %+v", report.Checks[0])
	}
}

func TestDoctorNoRecord(t *testing.T) {
	root, _ := project.NewRoot(t.TempDir())
	d := &Doctor{Root: root, LookPath: fakeLookPath("sh", "cmake"), Runner: &runtime.Recorder{Stdout: map[string]string{"--version": "cmake version 3.28.0"}}}

	report := d.Run(context.Background())
	if report.Checks[0].Status != StatusMiss {
		t.Errorf("first check = %+v, want MISS", report.Checks[0])
	}
}

func TestDoctorWarnsOnNonExecutableScript(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("no permission bits on windows")
	}
	root := scaffoldProject(t, "17", project.DocsNone, project.TestsNone)
	if err := os.Chmod(root.Join("tools", "build_debug.sh"), 0644); err != nil {
		t.Fatal(err)
	}
	d := &Doctor{Root: root, LookPath: fakeLookPath("sh"), Runner: &runtime.Recorder{}}

	var buf bytes.Buffer
	d.Run(context.Background()).Write(&buf)
	out := buf.String()
	if !strings.Contains(out, "[WARN] tools/build_debug.sh is not executable") {
		t.Errorf("non-executable script not reported:\n%s", out)
	}
	if !strings.Contains(out, "[ OK ] tools/run.sh") {
		t.Errorf("executable script not reported OK:\n%s", out)
	}
}
