package dispatch

import "fmt"

// Command names a top-level user command.
type Command string

const (
	CommandInit  Command = "init"
	CommandBuild Command = "build"
	CommandRun   Command = "run"
	CommandTest  Command = "test"
	CommandDocs  Command = "docs"
)

// Status is the outcome class of a dispatched command.
type Status int

const (
	// StatusSuccess means every step ran. External tools may still have
	// exited non-zero; their own diagnostics speak for them.
	StatusSuccess Status = iota
	// StatusPreconditionMissing means a generated script was absent and
	// nothing further was spawned.
	StatusPreconditionMissing
	// StatusNoTests means the tests directory holds no test sources.
	StatusNoTests
	// StatusExternalFailure means an external tool could not be started.
	StatusExternalFailure
	// StatusInvalid means init rejected its configuration.
	StatusInvalid
	// StatusIOError means a filesystem operation failed, such as writing
	// the scaffold.
	StatusIOError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPreconditionMissing:
		return "precondition missing"
	case StatusNoTests:
		return "no tests"
	case StatusExternalFailure:
		return "external failure"
	case StatusInvalid:
		return "invalid configuration"
	case StatusIOError:
		return "io error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of dispatching one command.
type Result struct {
	Command Command
	Status  Status
	// Script is the generated script the outcome refers to: the missing one
	// for StatusPreconditionMissing, otherwise the last one invoked.
	Script string
	// ExitCode is the exit code of the last external process, if any ran.
	ExitCode int
	// Err is the underlying error for failure statuses.
	Err error
}

// OK reports whether the command succeeded.
func (r Result) OK() bool { return r.Status == StatusSuccess }

func (r Result) String() string {
	if r.Script != "" {
		return fmt.Sprintf("%s: %s (%s)", r.Command, r.Status, r.Script)
	}
	return fmt.Sprintf("%s: %s", r.Command, r.Status)
}
