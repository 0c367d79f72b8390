package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrValidation is the sentinel every ValidationError unwraps to.
var ErrValidation = errors.New("validation error")

// Kind classifies a ValidationError.
type Kind int

const (
	KindInvalidName Kind = iota + 1
	KindInvalidEdition
	KindDestinationNotEmpty
	KindDestinationNotDirectory
)

func (k Kind) String() string {
	switch k {
	case KindInvalidName:
		return "invalid name"
	case KindInvalidEdition:
		return "invalid edition"
	case KindDestinationNotEmpty:
		return "destination not empty"
	case KindDestinationNotDirectory:
		return "destination not a directory"
	default:
		return "unknown"
	}
}

// ValidationError reports the first rule a requested project violates.
// Messages name the constraint, never the offending characters, so they
// stay stable across inputs.
type ValidationError struct {
	Kind    Kind
	Message string
	// Path is the resolved destination for destination errors.
	Path string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}

// ValidateName checks that name is non-empty and made only of lowercase
// ASCII letters, digits, hyphens and underscores.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Kind: KindInvalidName, Message: "project name cannot be empty"}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_' {
			continue
		}
		return &ValidationError{
			Kind:    KindInvalidName,
			Message: "project names can only contain lowercase letters, digits, hyphens, and underscores",
		}
	}
	return nil
}

// ValidateEdition checks that edition is one of the enumerated editions.
func ValidateEdition(edition string) (Edition, error) {
	e := Edition(edition)
	if !e.IsValid() {
		return "", &ValidationError{
			Kind:    KindInvalidEdition,
			Message: "edition must be 98, 11, 14, 17, 20, 23, or 26",
		}
	}
	return e, nil
}

// ValidateSyntax runs the filesystem-free checks in precedence order
// (name, then edition) and returns the resulting Config.
func ValidateSyntax(name, edition string, docs DocsGenerator, tests TestFramework) (Config, error) {
	if err := ValidateName(name); err != nil {
		return Config{}, err
	}
	e, err := ValidateEdition(edition)
	if err != nil {
		return Config{}, err
	}
	if docs == "" {
		docs = DocsNone
	}
	if tests == "" {
		tests = TestsNone
	}
	return Config{Name: name, Edition: e, Docs: docs, Tests: tests}, nil
}

// CheckDestination verifies that dest is absent or an empty directory.
// Hidden entries count: any entry at all makes the destination non-empty.
func CheckDestination(dest string) error {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolving destination %s: %w", dest, err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", abs, err)
	}
	if !info.IsDir() {
		return &ValidationError{
			Kind:    KindDestinationNotDirectory,
			Message: fmt.Sprintf("destination `%s` is not a directory", abs),
			Path:    abs,
		}
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return fmt.Errorf("reading destination %s: %w", abs, err)
	}
	if len(entries) > 0 {
		return &ValidationError{
			Kind:    KindDestinationNotEmpty,
			Message: fmt.Sprintf("destination `%s` is not empty", abs),
			Path:    abs,
		}
	}
	return nil
}

// Validate is the full pre-mutation check for init: name, edition, then
// the destination directory. It fails fast on the first violated rule.
func Validate(name, edition string, docs DocsGenerator, tests TestFramework, dest string) (Config, error) {
	cfg, err := ValidateSyntax(name, edition, docs, tests)
	if err != nil {
		return Config{}, err
	}
	if err := CheckDestination(dest); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
