package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-release phase identifiers, in sort order.
const (
	PhaseAlpha = iota // aN
	PhaseBeta         // bN
	PhaseRC           // rcN
)

// PreRelease identifies a pre-release segment such as "a1", "b2" or "rc3".
type PreRelease struct {
	Phase int // PhaseAlpha, PhaseBeta or PhaseRC
	Num   int
}

// Version is a parsed version identifier.
//
// The zero value is not a valid version; use Parse or MustParse.
// Versions are immutable after parsing and safe for concurrent use.
type Version struct {
	Epoch   int
	Release []int // at least one segment
	Pre     *PreRelease
	Post    *int
	Dev     *int
	Local   string // normalized local label, "" if absent

	original string
}

// versionPattern accepts the normalized version grammar plus the common
// spelling aliases (alpha/beta/c/pre/preview, rev/r, leading "v").
var versionPattern = regexp.MustCompile(`^` +
	`(?:(\d+)!)?` + // epoch
	`(\d+(?:\.\d+)*)` + // release
	`(?:[-_.]?(a|b|c|rc|alpha|beta|pre|preview)[-_.]?(\d*))?` + // pre
	`(?:(?:-(\d+))|(?:[-_.]?(post|rev|r)[-_.]?(\d*)))?` + // post
	`(?:[-_.]?(dev)[-_.]?(\d*))?` + // dev
	`(?:\+([a-z0-9]+(?:[-_.][a-z0-9]+)*))?` + // local
	`$`)

// Parse parses a version identifier.
//
// Parsing is case-insensitive and tolerates surrounding whitespace and a
// leading "v". Returns an error wrapping ErrInvalidVersion if the input
// does not match the version grammar.
func Parse(s string) (*Version, error) {
	original := s
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "v")

	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, original)
	}

	v := &Version{original: strings.TrimSpace(original)}

	if m[1] != "" {
		v.Epoch = atoi(m[1])
	}

	for _, part := range strings.Split(m[2], ".") {
		v.Release = append(v.Release, atoi(part))
	}

	if m[3] != "" {
		v.Pre = &PreRelease{Phase: phaseFromString(m[3]), Num: atoi(m[4])}
	}

	switch {
	case m[5] != "": // implicit post release "1.0-1"
		n := atoi(m[5])
		v.Post = &n
	case m[6] != "":
		n := atoi(m[7])
		v.Post = &n
	}

	if m[8] != "" {
		n := atoi(m[9])
		v.Dev = &n
	}

	if m[10] != "" {
		v.Local = strings.NewReplacer("-", ".", "_", ".").Replace(m[10])
	}

	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level constants.
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

func phaseFromString(s string) int {
	switch s {
	case "a", "alpha":
		return PhaseAlpha
	case "b", "beta":
		return PhaseBeta
	default: // c, rc, pre, preview
		return PhaseRC
	}
}

// IsPrerelease reports whether the version has a pre-release or
// developmental segment.
func (v *Version) IsPrerelease() bool {
	return v.Pre != nil || v.Dev != nil
}

// String returns the normalized form of the version.
func (v *Version) String() string {
	var b strings.Builder
	if v.Epoch != 0 {
		fmt.Fprintf(&b, "%d!", v.Epoch)
	}
	for i, r := range v.Release {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%d", r)
	}
	if v.Pre != nil {
		b.WriteString([]string{"a", "b", "rc"}[v.Pre.Phase])
		fmt.Fprintf(&b, "%d", v.Pre.Num)
	}
	if v.Post != nil {
		fmt.Fprintf(&b, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&b, ".dev%d", *v.Dev)
	}
	if v.Local != "" {
		fmt.Fprintf(&b, "+%s", v.Local)
	}
	return b.String()
}

// Original returns the version string as supplied to Parse.
func (v *Version) Original() string { return v.original }

// Compare returns -1, 0 or 1 depending on whether v sorts before, equal
// to, or after other.
//
// Ordering follows the packaging rules: epoch first, then the release
// segments compared element-wise with zero padding, then developmental,
// pre-, final and post-release segments, with the local label as the
// final tiebreak.
func (v *Version) Compare(other *Version) int {
	if c := cmpInt(v.Epoch, other.Epoch); c != 0 {
		return c
	}
	if c := cmpRelease(v.Release, other.Release); c != 0 {
		return c
	}
	if c := cmpInt(v.preRank(), other.preRank()); c != 0 {
		return c
	}
	if v.Pre != nil && other.Pre != nil {
		if c := cmpInt(v.Pre.Phase, other.Pre.Phase); c != 0 {
			return c
		}
		if c := cmpInt(v.Pre.Num, other.Pre.Num); c != 0 {
			return c
		}
	}
	if c := cmpOptional(v.Post, other.Post, -1); c != 0 {
		return c
	}
	if c := cmpOptional(v.Dev, other.Dev, int(^uint(0)>>1)); c != 0 {
		return c
	}
	return cmpLocal(v.Local, other.Local)
}

// Equal reports whether v and other compare equal.
func (v *Version) Equal(other *Version) bool { return v.Compare(other) == 0 }

// preRank buckets a version for pre-release ordering: a bare
// developmental release sorts lowest, versions with a pre-release segment
// sort next, everything else (final and post releases) sorts highest.
func (v *Version) preRank() int {
	switch {
	case v.Pre != nil:
		return 1
	case v.Post == nil && v.Dev != nil:
		return 0
	default:
		return 2
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpRelease(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if c := cmpInt(x, y); c != 0 {
			return c
		}
	}
	return 0
}

// cmpOptional compares optional numeric segments, substituting missing
// values with the given sentinel.
func cmpOptional(a, b *int, missing int) int {
	x, y := missing, missing
	if a != nil {
		x = *a
	}
	if b != nil {
		y = *b
	}
	return cmpInt(x, y)
}

// cmpLocal compares local labels segment-wise: numeric segments compare
// numerically and sort after alphanumeric ones, a missing label sorts
// first.
func cmpLocal(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aNum := strconv.Atoi(as[i])
		bn, bNum := strconv.Atoi(bs[i])
		switch {
		case aNum == nil && bNum == nil:
			if c := cmpInt(an, bn); c != 0 {
				return c
			}
		case aNum == nil:
			return 1 // numeric sorts after alphanumeric
		case bNum == nil:
			return -1
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	return cmpInt(len(as), len(bs))
}

// paddedRelease returns the release segments padded with zeros to n
// entries. Used by wildcard and compatible-release matching.
func (v *Version) paddedRelease(n int) []int {
	if len(v.Release) >= n {
		return v.Release
	}
	out := make([]int, n)
	copy(out, v.Release)
	return out
}
