package fileutil

import (
	"iter"
	"path/filepath"
	"strings"
)

// ExpandTargets turns parsed targets into the final sequence of paths to
// delete. Tokens containing * or ? are matched against the current working
// directory with shell-glob semantics; each match becomes its own target.
// A pattern that matches nothing (or does not parse as a pattern) passes
// through literally, so the delete phase treats it like any other
// nonexistent target. Tokens without wildcard characters pass through
// unchanged.
//
// The sequence is lazy and single-pass; the caller consumes it exactly once.
func ExpandTargets(targets []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, target := range targets {
			if !strings.ContainsAny(target, "*?") {
				if !yield(target) {
					return
				}
				continue
			}

			matches, err := filepath.Glob(target)
			if err != nil || len(matches) == 0 {
				if !yield(target) {
					return
				}
				continue
			}

			for _, match := range matches {
				if !yield(match) {
					return
				}
			}
		}
	}
}
