package dispatch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/streamline-dev/streamline/internal/report"
	"github.com/streamline-dev/streamline/internal/scaffold"
)

// DefaultDebounce is how long the source tree must stay quiet before a
// watched rebuild starts.
const DefaultDebounce = 250 * time.Millisecond

// Watch builds once, then rebuilds whenever files under src/ change, until
// ctx is cancelled. Builds run one at a time on the calling goroutine.
// Cancelling ctx mid-build ends the watch with the last finished build's
// result; a cancelled build is never reported as a failure.
func (d *Dispatcher) Watch(ctx context.Context, mode Mode, debounce time.Duration) Result {
	res := d.Build(ctx, mode)
	if ctx.Err() != nil {
		return interrupted(mode)
	}
	if res.Status == StatusPreconditionMissing || res.Status == StatusExternalFailure {
		return res
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		report.Errorf(d.reporter, "failed to create file watcher: %v", err)
		return Result{Command: CommandBuild, Status: StatusIOError, Err: err}
	}
	defer w.Close()

	src := d.root.Join(scaffold.SourceDir)
	if err := addTree(w, src); err != nil {
		report.Errorf(d.reporter, "watching `./%s`: %v", scaffold.SourceDir, err)
		return Result{Command: CommandBuild, Status: StatusIOError, Err: err}
	}
	d.reporter.Info(fmt.Sprintf("watching `./%s` for changes (ctrl+c to stop)", scaffold.SourceDir))

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(debounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return res

		case ev, ok := <-w.Events:
			if !ok {
				return res
			}
			if ev.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name); err != nil {
						report.Warn("could not watch new directory", "dir", ev.Name, "err", err)
					}
				}
			}
			report.Debug("source change", "path", ev.Name, "op", ev.Op.String())
			resetTimer()

		case <-timerCh:
			timer = nil
			timerCh = nil
			next := d.build(ctx, CommandBuild, mode)
			if ctx.Err() != nil {
				return res
			}
			res = next
			if res.Status == StatusPreconditionMissing || res.Status == StatusExternalFailure {
				return res
			}

		case err, ok := <-w.Errors:
			if !ok {
				return res
			}
			report.Warn("watch error", "err", err)
		}
	}
}

// interrupted is the result of a watch stopped during its first build.
func interrupted(mode Mode) Result {
	return Result{Command: CommandBuild, Status: StatusSuccess, Script: mode.script()}
}

// addTree watches dir and every directory below it.
func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !e.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}
