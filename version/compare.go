// Package version checks the running build against the latest published release.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type semver [3]int

// parse accepts "1.2.3", "v1.2" or "1.2.3-rc1". Missing parts count as zero
// and anything after '-' or '+' is ignored.
func parse(s string) (semver, error) {
	var v semver

	core := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return v, fmt.Errorf("malformed version %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("malformed version %q", s)
		}
		v[i] = n
	}

	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	return slices.Compare(av[:], bv[:]), nil
}

// Newer reports whether candidate is strictly newer than current.
// Unparsable input is never considered newer.
func Newer(candidate, current string) bool {
	c, err := Compare(candidate, current)
	return err == nil && c > 0
}
