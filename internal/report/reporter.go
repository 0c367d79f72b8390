package report

import (
	"fmt"
	"sync"
)

// Level classifies a reported event.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Reporter receives the user-facing events of a command. Core packages
// depend only on this interface.
type Reporter interface {
	Error(msg string)
	Warn(msg string)
	Success(msg string)
	Info(msg string)
}

// Event is one recorded report.
type Event struct {
	Level   Level
	Message string
}

func (e Event) String() string {
	return e.Level.String() + ": " + e.Message
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Message: msg})
}

func (r *Recorder) Error(msg string)   { r.add(LevelError, msg) }
func (r *Recorder) Warn(msg string)    { r.add(LevelWarn, msg) }
func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Messages returns the messages recorded at level.
func (r *Recorder) Messages(level Level) []string {
	var msgs []string
	for _, e := range r.Events() {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Discard drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Error(string)   {}
func (discard) Warn(string)    {}
func (discard) Success(string) {}
func (discard) Info(string)    {}

// Errorf reports a formatted error.
func Errorf(r Reporter, format string, args ...any) {
	r.Error(fmt.Sprintf(format, args...))
}
