// Package report carries user-facing output. Commands report through the
// Reporter interface; Console renders events for people, Recorder keeps
// them for tests and Discard drops them. Diagnostic logging for --verbose
// goes through the package-level charm logger.
package report
