package runtime

import (
	"context"
	"fmt"
	"sync"
)

// Recorder is a Runner that records invocations instead of running them.
// Exit codes and failures can be scripted per executable argument list.
type Recorder struct {
	mu    sync.Mutex
	calls []Invocation

	// ExitCodes maps the first argument (usually a script path) to the
	// exit code reported for it.
	ExitCodes map[string]int
	// Missing lists executables that behave as if absent from PATH.
	Missing map[string]bool
	// Stdout maps the first argument to canned standard output.
	Stdout map[string]string
	// BlockFrom, when positive, makes the BlockFrom-th call and every later
	// one wait until ctx ends and then fail with its error, like a process
	// killed on interrupt.
	BlockFrom int
	// Started receives the index of every call, when non-nil.
	Started chan<- int
}

// Run records inv and returns the scripted outcome.
func (r *Recorder) Run(ctx context.Context, inv Invocation) (*Output, error) {
	r.mu.Lock()
	r.calls = append(r.calls, inv)
	n := len(r.calls)
	r.mu.Unlock()

	if r.Started != nil {
		r.Started <- n
	}
	if r.BlockFrom > 0 && n >= r.BlockFrom {
		<-ctx.Done()
		return nil, fmt.Errorf("%s interrupted: %w", inv.Name, ctx.Err())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Missing[inv.Name] {
		return nil, fmt.Errorf("%w: %s: not found", ErrNotInvocable, inv.Name)
	}

	key := ""
	if len(inv.Args) > 0 {
		key = inv.Args[0]
	}
	out := &Output{ExitCode: r.ExitCodes[key], Stdout: r.Stdout[key]}
	if inv.Stdout != nil && out.Stdout != "" {
		fmt.Fprint(inv.Stdout, out.Stdout)
	}
	return out, nil
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.calls...)
}

// FirstArgs returns the first argument of every recorded invocation.
func (r *Recorder) FirstArgs() []string {
	var args []string
	for _, c := range r.Calls() {
		if len(c.Args) > 0 {
			args = append(args, c.Args[0])
		} else {
			args = append(args, "")
		}
	}
	return args
}
