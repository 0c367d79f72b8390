// Package manifest reads, writes and validates the project record that init
// leaves at .streamline/project.yaml. The record mirrors the options a
// project was scaffolded with; commands use it for hints and compatibility
// warnings, never as a precondition.
package manifest
