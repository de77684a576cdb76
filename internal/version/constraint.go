package version

import (
	"fmt"
	"strings"
)

// Operator is a constraint comparison operator.
type Operator string

// Supported constraint operators.
const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpCompatible   Operator = "~="
	OpArbitrary    Operator = "==="
)

// Constraint is a single version constraint, e.g. ">=1.24".
type Constraint struct {
	Op       Operator
	Version  *Version
	Wildcard bool   // "==1.2.*" / "!=1.2.*" prefix match
	Raw      string // verbatim constraint text
}

// Constraints is a conjunction of constraints, e.g. ">=1.24,<2.0".
// An empty set matches every version.
type Constraints []Constraint

// operators in match order: longest first so "===" is not read as "==".
var operators = []Operator{OpArbitrary, OpCompatible, OpEqual, OpNotEqual, OpLessEqual, OpGreaterEqual, OpLess, OpGreater}

// ParseConstraint parses a single constraint such as ">=1.24" or
// "==1.2.*". Surrounding whitespace is ignored.
func ParseConstraint(s string) (Constraint, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Constraint{}, fmt.Errorf("%w: empty constraint", ErrInvalidConstraint)
	}

	var op Operator
	for _, candidate := range operators {
		if strings.HasPrefix(raw, string(candidate)) {
			op = candidate
			break
		}
	}
	if op == "" {
		return Constraint{}, fmt.Errorf("%w: %q has no operator", ErrInvalidOperator, raw)
	}

	rest := strings.TrimSpace(raw[len(op):])
	c := Constraint{Op: op, Raw: raw}

	if op == OpArbitrary {
		// Arbitrary equality compares verbatim strings; keep the text in
		// a synthetic version so String() round-trips.
		c.Version = &Version{original: rest, Release: []int{0}}
		return c, nil
	}

	if strings.HasSuffix(rest, ".*") {
		if op != OpEqual && op != OpNotEqual {
			return Constraint{}, fmt.Errorf("%w: wildcard not allowed with %s", ErrInvalidConstraint, op)
		}
		c.Wildcard = true
		rest = strings.TrimSuffix(rest, ".*")
	}

	v, err := Parse(rest)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: %q: %v", ErrInvalidConstraint, raw, err)
	}
	if op == OpCompatible && len(v.Release) < 2 {
		return Constraint{}, fmt.Errorf("%w: %q needs at least two release segments", ErrInvalidConstraint, raw)
	}
	c.Version = v
	return c, nil
}

// ParseConstraints parses a comma-separated constraint set. The set may
// be wrapped in parentheses ("(>=1.24, <2.0)"). An empty string yields
// an empty set, which matches everything.
func ParseConstraints(s string) (Constraints, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return nil, nil
	}

	var cs Constraints
	for _, part := range strings.Split(s, ",") {
		c, err := ParseConstraint(part)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// Check reports whether the version satisfies the constraint.
func (c Constraint) Check(v *Version) bool {
	switch c.Op {
	case OpArbitrary:
		return strings.TrimSpace(v.Original()) == c.Version.Original()
	case OpEqual:
		if c.Wildcard {
			return c.prefixMatch(v)
		}
		return v.Compare(c.Version) == 0
	case OpNotEqual:
		if c.Wildcard {
			return !c.prefixMatch(v)
		}
		return v.Compare(c.Version) != 0
	case OpLessEqual:
		return v.Compare(c.Version) <= 0
	case OpGreaterEqual:
		return v.Compare(c.Version) >= 0
	case OpLess:
		return v.Compare(c.Version) < 0
	case OpGreater:
		return v.Compare(c.Version) > 0
	case OpCompatible:
		// "~=V" means ">=V, ==prefix.*" where the prefix drops the final
		// release segment. The wildcard side excludes pre-releases of the
		// next minor ("~=1.4.2" rejects 1.5.0a1), unlike a "<1.5" bound.
		if v.Compare(c.Version) < 0 {
			return false
		}
		prefix := Constraint{Op: OpEqual, Version: c.compatiblePrefix()}
		return prefix.prefixMatch(v)
	default:
		return false
	}
}

// prefixMatch reports whether v matches the wildcard prefix, e.g.
// "==1.2.*" matches any version whose padded release starts with 1.2.
func (c Constraint) prefixMatch(v *Version) bool {
	if v.Epoch != c.Version.Epoch {
		return false
	}
	want := c.Version.Release
	got := v.paddedRelease(len(want))
	for i, w := range want {
		if got[i] != w {
			return false
		}
	}
	return true
}

// compatiblePrefix returns the wildcard prefix implied by "~=": the
// release with its final segment dropped ("~=1.4.2" means ==1.4.*).
func (c Constraint) compatiblePrefix() *Version {
	rel := c.Version.Release
	prefix := make([]int, len(rel)-1)
	copy(prefix, rel[:len(rel)-1])
	return &Version{Epoch: c.Version.Epoch, Release: prefix}
}

// compatibleUpper returns the exclusive upper bound of the interval
// "~=" admits: the release with its final segment dropped and the new
// final segment incremented ("~=1.4.2" < 1.5). Used only for interval
// over-approximation; Check uses the exact wildcard prefix.
func (c Constraint) compatibleUpper() *Version {
	rel := c.Version.Release
	upper := make([]int, len(rel)-1)
	copy(upper, rel[:len(rel)-1])
	upper[len(upper)-1]++
	return &Version{Epoch: c.Version.Epoch, Release: upper}
}

// String returns the constraint in normalized form.
func (c Constraint) String() string {
	if c.Op == OpArbitrary {
		return string(c.Op) + c.Version.Original()
	}
	s := string(c.Op) + c.Version.String()
	if c.Wildcard {
		s += ".*"
	}
	return s
}

// Check reports whether the version satisfies every constraint in the
// set. The empty set matches everything.
func (cs Constraints) Check(v *Version) bool {
	for _, c := range cs {
		if !c.Check(v) {
			return false
		}
	}
	return true
}

// AllowsPrerelease reports whether the set explicitly names a
// pre-release or developmental version. Resolvers only admit pre-release
// candidates when this holds.
func (cs Constraints) AllowsPrerelease() bool {
	for _, c := range cs {
		if c.Op != OpArbitrary && c.Version.IsPrerelease() {
			return true
		}
	}
	return false
}

// String returns the comma-joined normalized constraint set.
func (cs Constraints) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// bound is one side of the interval a constraint set admits.
type bound struct {
	v         *Version
	inclusive bool
}

// bounds derives the interval [lower, upper] admitted by the set,
// considering only range-forming operators (==, <=, >=, <, >, ~=).
// Exclusions (!=) and arbitrary equality never tighten the interval, so
// the result over-approximates: a nil side means unbounded.
func (cs Constraints) bounds() (lower, upper *bound) {
	tightenLower := func(b bound) {
		if lower == nil || b.v.Compare(lower.v) > 0 || (b.v.Compare(lower.v) == 0 && !b.inclusive) {
			lower = &b
		}
	}
	tightenUpper := func(b bound) {
		if upper == nil || b.v.Compare(upper.v) < 0 || (b.v.Compare(upper.v) == 0 && !b.inclusive) {
			upper = &b
		}
	}

	for _, c := range cs {
		switch c.Op {
		case OpEqual:
			if c.Wildcard {
				tightenLower(bound{c.Version, true})
				tightenUpper(bound{c.wildcardUpper(), false})
				continue
			}
			tightenLower(bound{c.Version, true})
			tightenUpper(bound{c.Version, true})
		case OpGreaterEqual:
			tightenLower(bound{c.Version, true})
		case OpGreater:
			tightenLower(bound{c.Version, false})
		case OpLessEqual:
			tightenUpper(bound{c.Version, true})
		case OpLess:
			tightenUpper(bound{c.Version, false})
		case OpCompatible:
			tightenLower(bound{c.Version, true})
			tightenUpper(bound{c.compatibleUpper(), false})
		}
	}
	return lower, upper
}

// wildcardUpper is the exclusive upper bound of a "==X.Y.*" prefix:
// the prefix with its last segment incremented.
func (c Constraint) wildcardUpper() *Version {
	rel := make([]int, len(c.Version.Release))
	copy(rel, c.Version.Release)
	rel[len(rel)-1]++
	return &Version{Epoch: c.Version.Epoch, Release: rel}
}

// Intersects reports whether the intervals admitted by the two sets
// overlap. It over-approximates (ignores != exclusions), so a false
// result definitely means the sets are disjoint.
func (cs Constraints) Intersects(other Constraints) bool {
	l1, u1 := cs.bounds()
	l2, u2 := other.bounds()

	lower, upper := maxBound(l1, l2), minBound(u1, u2)
	if lower == nil || upper == nil {
		return true
	}
	switch c := lower.v.Compare(upper.v); {
	case c < 0:
		return true
	case c > 0:
		return false
	default:
		return lower.inclusive && upper.inclusive
	}
}

// Contradictory reports whether the set admits no version at all
// (its lower bound exceeds its upper bound).
func (cs Constraints) Contradictory() bool {
	return !cs.Intersects(nil)
}

func maxBound(a, b *bound) *bound {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if c := a.v.Compare(b.v); c > 0 || (c == 0 && !a.inclusive) {
		return a
	}
	return b
}

func minBound(a, b *bound) *bound {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if c := a.v.Compare(b.v); c < 0 || (c == 0 && !a.inclusive) {
		return a
	}
	return b
}
