package project

import (
	"fmt"
	"strings"
)

// Edition is a C++ language standard revision.
type Edition string

const (
	Edition98 Edition = "98"
	Edition11 Edition = "11"
	Edition14 Edition = "14"
	Edition17 Edition = "17"
	Edition20 Edition = "20"
	Edition23 Edition = "23"
	Edition26 Edition = "26"
)

// DefaultEdition is used when neither a flag nor the user config picks one.
const DefaultEdition = Edition17

// Editions returns every supported edition, oldest first.
func Editions() []Edition {
	return []Edition{Edition98, Edition11, Edition14, Edition17, Edition20, Edition23, Edition26}
}

// IsValid reports whether e is one of the enumerated editions.
func (e Edition) IsValid() bool {
	for _, v := range Editions() {
		if e == v {
			return true
		}
	}
	return false
}

// DocsGenerator selects the documentation generator wired into a project.
type DocsGenerator string

const (
	DocsNone    DocsGenerator = "none"
	DocsDoxygen DocsGenerator = "doxygen"
)

// TestFramework selects the unit test framework wired into a project.
type TestFramework string

const (
	TestsNone  TestFramework = "none"
	TestsGTest TestFramework = "gtest"
)

// ParseDocsGenerator maps a flag value onto DocsGenerator.
// Unknown values are rejected at the argument boundary, before validation.
func ParseDocsGenerator(s string) (DocsGenerator, error) {
	switch d := DocsGenerator(strings.ToLower(strings.TrimSpace(s))); d {
	case DocsNone, DocsDoxygen:
		return d, nil
	case "":
		return DocsNone, nil
	default:
		return "", fmt.Errorf("unknown docs generator %q: expected %q or %q", s, DocsNone, DocsDoxygen)
	}
}

// ParseTestFramework maps a flag value onto TestFramework.
func ParseTestFramework(s string) (TestFramework, error) {
	switch f := TestFramework(strings.ToLower(strings.TrimSpace(s))); f {
	case TestsNone, TestsGTest:
		return f, nil
	case "":
		return TestsNone, nil
	default:
		return "", fmt.Errorf("unknown test framework %q: expected %q or %q", s, TestsNone, TestsGTest)
	}
}

// Config is the validated description of a project to scaffold.
// It is built once by Validate and passed around by value.
type Config struct {
	Name    string
	Edition Edition
	Docs    DocsGenerator
	Tests   TestFramework
}

// HasDocs reports whether a documentation generator is configured.
func (c Config) HasDocs() bool { return c.Docs == DocsDoxygen }

// HasTests reports whether a test framework is configured.
func (c Config) HasTests() bool { return c.Tests == TestsGTest }
