// Package version compares semantic versions: the tool version stamped
// into a project record against the running binary, and external tool
// versions against the minimums a generated project needs.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?([-+][0-9A-Za-z.-]+)?`)

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated on either side.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// AtLeast reports whether have >= min.
func AtLeast(have, min string) (bool, error) {
	cmp, err := Compare(have, min)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// IsNewer reports whether candidate is strictly newer than current.
// Unparseable versions (such as "dev" builds) never count as newer.
func IsNewer(candidate, current string) bool {
	cmp, err := Compare(candidate, current)
	return err == nil && cmp > 0
}

// Extract returns the first version-looking token in a tool's banner,
// e.g. "3.28.3" from "cmake version 3.28.3". Returns "" when none is found.
func Extract(output string) string {
	return versionPattern.FindString(output)
}

func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}
