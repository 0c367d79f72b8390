// Package project holds the validated configuration of a C++ project and the
// rules that produce it: name and edition syntax, the empty-destination
// precondition, and resolution of the project root that later commands
// address every generated file from.
package project
