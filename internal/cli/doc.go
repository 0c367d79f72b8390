// Package cli defines the Cobra command tree for the streamline CLI. Each
// file registers one command (init, build, run, test, docs, doctor, config,
// version) with the root command. Commands parse flags, resolve the project
// root and hand off to the dispatch and toolchain packages; results are
// mapped onto process exit codes in exit.go.
package cli
