package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Version is a released version reduced to its numeric release segments.
// "v1.2.3-rc1" and "1.2.3" both reduce to the segments [1 2 3]; any
// pre-release or build suffix after the numeric run is discarded.
type Version struct {
	segments []uint64
}

// ParseVersion extracts the release segments from a raw tag or version
// string. The boolean is false when the string carries no usable
// version structure.
//
// A single leading 'v' or 'V' is stripped. The longest leading run of
// digits and dots is then split on dots; every part must be a valid
// base-10 number. Strings with empty parts ("1..2", ".5", "1.") are
// rejected. Distro epoch markers ("1:2.3.4") are rejected outright:
// flat segment ordering cannot honor epoch dominance, and a truncated
// epoch digit would outrank every real version.
func ParseVersion(raw string) (Version, bool) {
	s := strings.TrimSpace(raw)
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}

	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end < len(s) && (s[end] == ':' || s[end] == '!') {
		return Version{}, false
	}
	s = s[:end]
	if s == "" {
		return Version{}, false
	}

	parts := strings.Split(s, ".")
	segments := make([]uint64, len(parts))
	for i, part := range parts {
		if part == "" {
			return Version{}, false
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, false
		}
		segments[i] = n
	}
	return Version{segments: segments}, true
}

// ParseVersions parses every raw string and returns the parseable ones
// sorted in ascending order. Unparseable strings are dropped.
func ParseVersions(raws []string) []Version {
	versions := make([]Version, 0, len(raws))
	for _, raw := range raws {
		if v, ok := ParseVersion(raw); ok {
			versions = append(versions, v)
		}
	}
	slices.SortFunc(versions, Version.Compare)
	return versions
}

// Latest returns the highest of the given versions. The boolean is
// false when the slice is empty.
func Latest(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	return slices.MaxFunc(versions, Version.Compare), true
}

// Compare orders versions segment by segment. A version that is a
// strict prefix of another is older: 1.2 < 1.2.0 < 1.2.1.
func (v Version) Compare(o Version) int {
	return slices.Compare(v.segments, o.segments)
}

// IsZero reports whether v carries no segments, i.e. was never parsed.
func (v Version) IsZero() bool {
	return len(v.segments) == 0
}

// Segments returns a copy of the numeric release segments.
func (v Version) Segments() []uint64 {
	return slices.Clone(v.segments)
}

// String renders the canonical dotted form, e.g. "1.2.3". Leading
// zeros in the raw input do not survive parsing, so "v1.02" renders
// as "1.2".
func (v Version) String() string {
	var b strings.Builder
	for i, seg := range v.segments {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(seg, 10))
	}
	return b.String()
}
