// Package runtime is the boundary to external processes. Runner runs an
// executable with arguments and a working directory and reports its exit
// code; ExecRunner is the os/exec implementation and Recorder a scripted
// stand-in for tests.
package runtime
