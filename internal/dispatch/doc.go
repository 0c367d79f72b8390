// Package dispatch maps the user commands init, build, run, test and docs
// onto the scripts generated at init. Each command re-checks that its
// scripts exist before spawning anything, runs them in order through a
// runtime.Runner, and reports through a report.Reporter.
//
// External tools are trusted to report their own failures: a script that
// starts and exits non-zero still counts as success here, with the exit
// code kept in Result.ExitCode.
package dispatch
