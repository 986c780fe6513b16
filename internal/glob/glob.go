// Package glob implements the simple *-based matching autorebase uses
// for --match-branches: the first and last segments of the split get
// the anchored checks, every segment between them finds its first
// match left to right.
package glob

import "strings"

// Match reports whether string matches pattern. pattern may contain
// any number of '*' wildcards, each matching zero or more characters.
func Match(pattern, s string) bool {
	if pattern == "" {
		return s == ""
	}

	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}

	first := parts[0]
	if !strings.HasPrefix(s, first) {
		return false
	}
	index := len(first)

	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		offset := strings.Index(s[index:], part)
		if offset == -1 {
			return false
		}
		index += offset + len(part)
	}

	return strings.HasSuffix(s[index:], last)
}
