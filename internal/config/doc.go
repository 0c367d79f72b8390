// Package config manages user-level settings stored at
// ~/.streamline/config.yaml: the defaults init uses for edition, docs and
// tests, the interpreter generated scripts run under, and the viewer that
// docs --open launches. Every key can be overridden with a STREAMLINE_*
// environment variable.
package config
