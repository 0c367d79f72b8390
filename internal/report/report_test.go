package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConsolePlain(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.Success("created new project")
	c.Info("running tools/run.sh")
	c.Error("could not find `run.sh` in `./tools/run.sh`")
	c.Warn("docs were not enabled at init")

	wantOut := "success: created new project\ninfo: running tools/run.sh\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}
	wantErr := "error: could not find `run.sh` in `./tools/run.sh`\nwarning: docs were not enabled at init\n"
	if errOut.String() != wantErr {
		t.Errorf("stderr = %q, want %q", errOut.String(), wantErr)
	}
}

func TestConsoleWithColorKeepsMessage(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, WithColor(true))
	c.Success("finished debug build")
	if !strings.Contains(out.String(), "finished debug build") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "success:") {
		t.Errorf("level token missing: %q", out.String())
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	var rep Reporter = r
	rep.Info("a")
	rep.Error("b")
	Errorf(rep, "c %d", 1)

	events := r.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[1].String() != "error: b" {
		t.Errorf("events[1] = %q", events[1])
	}
	if got := r.Messages(LevelError); len(got) != 2 || got[1] != "c 1" {
		t.Errorf("Messages(error) = %v", got)
	}
}

func TestDiscard(t *testing.T) {
	Discard.Error("ignored")
	Discard.Success("ignored")
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { SetupLogging(false) })

	SetupLogging(false)
	if Logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want warn", Logger.GetLevel())
	}
	SetupLogging(true)
	if Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", Logger.GetLevel())
	}
}
