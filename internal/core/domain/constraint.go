package domain

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Constraint restricts which released versions a package may resolve
// to, e.g. "^1.0" or ">= 2.1, < 3".
type Constraint struct {
	raw        string
	constraint *semver.Constraints
}

// ParseConstraint compiles a constraint expression.
func ParseConstraint(raw string) (*Constraint, error) {
	c, err := semver.NewConstraint(raw)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrInvalidConstraint.Error()), "constraint", raw)
	}
	return &Constraint{raw: raw, constraint: c}, nil
}

// Matches reports whether the version satisfies the constraint.
// Only the first three release segments take part in the check;
// missing segments count as zero, so "1.2" is checked as 1.2.0.
func (c *Constraint) Matches(v Version) bool {
	segs := v.segments
	var parts [3]uint64
	for i := 0; i < len(parts) && i < len(segs); i++ {
		parts[i] = segs[i]
	}
	return c.constraint.Check(semver.New(parts[0], parts[1], parts[2], "", ""))
}

// String returns the original constraint expression.
func (c *Constraint) String() string {
	return c.raw
}
