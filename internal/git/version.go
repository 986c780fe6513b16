package git

import (
	"context"
	"strconv"
	"strings"
)

// Version is a parsed [major, minor] git version vector. Unparseable
// fragments become sentinel low values so that an exotic version
// string never spuriously satisfies the minimum check; it also never
// panics on one.
type Version struct {
	Major int
	Minor int
}

// Less reports whether v is strictly below min, comparing only the
// major and minor components.
func (v Version) Less(min Version) bool {
	if v.Major != min.Major {
		return v.Major < min.Major
	}
	return v.Minor < min.Minor
}

// QueryVersion runs `git --version` and parses it.
func QueryVersion(ctx context.Context) (Version, error) {
	out, err := runCwd(ctx, "--version")
	if err != nil {
		return Version{}, err
	}
	return ParseVersion(out), nil
}

// ParseVersion extracts the leading "git version X.Y[.Z][-vendor]"
// fragments. Any fragment that fails to parse as an integer becomes 0,
// which is a sentinel low value: it can never cause an exotic vendor
// suffix (e.g. "2.39.2.windows.1") to spuriously pass a minimum-version
// check on just the first two components. An empty or unrecognised
// string parses as 0.0 and so fails any minimum above 0.0.
func ParseVersion(raw string) Version {
	fields := strings.Fields(raw)
	var numeric string
	for _, f := range fields {
		if len(f) > 0 && (f[0] >= '0' && f[0] <= '9') {
			numeric = f
			break
		}
	}
	parts := strings.SplitN(numeric, ".", 3)
	v := Version{}
	if len(parts) > 0 {
		v.Major = atoiOrZero(parts[0])
	}
	if len(parts) > 1 {
		v.Minor = atoiOrZero(parts[1])
	}
	return v
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
