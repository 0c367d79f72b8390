// Package toolchain implements the doctor checks: the project record is
// valid, every script it implies exists, and the external tools those
// scripts call are on PATH at a recent enough version.
package toolchain
