// Package semverx implements Cargo-style version requirements on top of
// golang.org/x/mod/semver ordering.
package semverx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	ErrInvalidVersion     = errors.New("invalid_version")
	ErrInvalidRequirement = errors.New("invalid_requirement")
)

// Version is a full MAJOR.MINOR.PATCH[-PRE] version.
type Version struct {
	Major, Minor, Patch uint64
	Pre                 string
}

// ParseVersion accepts "1.2.3", "v1.2.3" and "1.0.0-alpha.9". Build metadata
// is dropped.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if !semver.IsValid("v" + raw) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	core := raw
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q needs major.minor.patch", ErrInvalidVersion, s)
	}
	var v Version
	var err error
	if v.Major, err = strconv.ParseUint(parts[0], 10, 64); err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	if v.Minor, err = strconv.ParseUint(parts[1], 10, 64); err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	if v.Patch, err = strconv.ParseUint(parts[2], 10, 64); err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	v.Pre = strings.TrimPrefix(semver.Prerelease("v"+raw), "-")
	return v, nil
}

// MustVersion is ParseVersion for literals.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

func (v Version) canonical() string { return "v" + v.String() }

// IsPrerelease reports whether v carries a pre-release tag.
func (v Version) IsPrerelease() bool { return v.Pre != "" }

// Compare returns -1, 0 or +1.
func Compare(a, b Version) int { return semver.Compare(a.canonical(), b.canonical()) }

func sameCore(a, b Version) bool {
	return a.Major == b.Major && a.Minor == b.Minor && a.Patch == b.Patch
}

// ---- requirements ----

type op uint8

const (
	opEQ op = iota
	opGT
	opGE
	opLT
	opLE
)

type comparator struct {
	op op
	v  Version
}

func (c comparator) matches(v Version) bool {
	d := Compare(v, c.v)
	switch c.op {
	case opEQ:
		return d == 0
	case opGT:
		return d > 0
	case opGE:
		return d >= 0
	case opLT:
		return d < 0
	default:
		return d <= 0
	}
}

// Requirement is a conjunction of comparators, e.g. "^0.8.0" or ">=0.7, <0.9".
type Requirement struct {
	raw  string
	cmps []comparator
}

// Any matches every non-pre-release version.
var Any = Requirement{raw: "*"}

func (r Requirement) String() string { return r.raw }

// Matches reports whether v satisfies every comparator. A pre-release only
// matches when some comparator names a pre-release with the same core.
func (r Requirement) Matches(v Version) bool {
	for _, c := range r.cmps {
		if !c.matches(v) {
			return false
		}
	}
	if !v.IsPrerelease() {
		return true
	}
	for _, c := range r.cmps {
		if c.v.IsPrerelease() && sameCore(c.v, v) {
			return true
		}
	}
	return false
}

// MustRequirement is ParseRequirement for literals.
func MustRequirement(s string) Requirement {
	r, err := ParseRequirement(s)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRequirement parses a comma-separated list of Cargo comparators.
// A bare version is a caret requirement.
func ParseRequirement(s string) (Requirement, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Requirement{}, fmt.Errorf("%w: empty", ErrInvalidRequirement)
	}
	req := Requirement{raw: raw}
	for _, part := range strings.Split(raw, ",") {
		cs, err := parseComparator(strings.TrimSpace(part))
		if err != nil {
			return Requirement{}, fmt.Errorf("%w: %q: %v", ErrInvalidRequirement, s, err)
		}
		req.cmps = append(req.cmps, cs...)
	}
	return req, nil
}

// partial is a possibly incomplete version: "1", "1.2", "1.2.3-pre", "1.*".
type partial struct {
	major, minor, patch uint64
	hasMinor, hasPatch  bool
	pre                 string
}

func (p partial) floor() Version {
	return Version{Major: p.major, Minor: p.minor, Patch: p.patch, Pre: p.pre}
}

func parsePartial(s string) (partial, error) {
	var p partial
	core, pre, hasPre := strings.Cut(s, "-")
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core = core[:i]
	}
	parts := strings.Split(core, ".")
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return p, fmt.Errorf("bad version %q", s)
	}
	nums := []*uint64{&p.major, &p.minor, &p.patch}
	for i, part := range parts {
		if part == "*" || part == "x" || part == "X" {
			if i < len(parts)-1 {
				return p, fmt.Errorf("wildcard must be last in %q", s)
			}
			if i == 0 {
				return p, fmt.Errorf("bare wildcard with operator in %q", s)
			}
			break
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return p, fmt.Errorf("bad number %q in %q", part, s)
		}
		*nums[i] = n
		switch i {
		case 1:
			p.hasMinor = true
		case 2:
			p.hasPatch = true
		}
	}
	if hasPre {
		if !p.hasPatch || pre == "" {
			return p, fmt.Errorf("pre-release needs a full version in %q", s)
		}
		p.pre = pre
	}
	return p, nil
}

func ge(v Version) comparator { return comparator{op: opGE, v: v} }
func lt(v Version) comparator { return comparator{op: opLT, v: v} }

// Upper bounds are always plain releases.
func nextMajor(p partial) Version { return Version{Major: p.major + 1} }
func nextMinor(p partial) Version { return Version{Major: p.major, Minor: p.minor + 1} }
func nextPatch(p partial) Version {
	return Version{Major: p.major, Minor: p.minor, Patch: p.patch + 1}
}

func parseComparator(s string) ([]comparator, error) {
	if s == "" {
		return nil, errors.New("empty comparator")
	}
	if s == "*" || s == "x" || s == "X" {
		return nil, nil
	}
	var opStr string
	for _, cand := range []string{">=", "<=", ">", "<", "=", "^", "~"} {
		if strings.HasPrefix(s, cand) {
			opStr = cand
			break
		}
	}
	p, err := parsePartial(strings.TrimSpace(strings.TrimPrefix(s, opStr)))
	if err != nil {
		return nil, err
	}
	lo := p.floor()

	switch opStr {
	case "", "^":
		switch {
		case p.major > 0 || !p.hasMinor:
			return []comparator{ge(lo), lt(nextMajor(p))}, nil
		case p.minor > 0 || !p.hasPatch:
			return []comparator{ge(lo), lt(nextMinor(p))}, nil
		default:
			return []comparator{ge(lo), lt(nextPatch(p))}, nil
		}
	case "~":
		if !p.hasMinor {
			return []comparator{ge(lo), lt(nextMajor(p))}, nil
		}
		return []comparator{ge(lo), lt(nextMinor(p))}, nil
	case "=":
		switch {
		case p.hasPatch:
			return []comparator{{op: opEQ, v: lo}}, nil
		case p.hasMinor:
			return []comparator{ge(lo), lt(nextMinor(p))}, nil
		default:
			return []comparator{ge(lo), lt(nextMajor(p))}, nil
		}
	case ">":
		switch {
		case p.hasPatch:
			return []comparator{{op: opGT, v: lo}}, nil
		case p.hasMinor:
			return []comparator{ge(nextMinor(p))}, nil
		default:
			return []comparator{ge(nextMajor(p))}, nil
		}
	case ">=":
		return []comparator{ge(lo)}, nil
	case "<":
		return []comparator{lt(lo)}, nil
	default: // "<="
		switch {
		case p.hasPatch:
			return []comparator{{op: opLE, v: lo}}, nil
		case p.hasMinor:
			return []comparator{lt(nextMinor(p))}, nil
		default:
			return []comparator{lt(nextMajor(p))}, nil
		}
	}
}
