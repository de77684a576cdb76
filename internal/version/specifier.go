package version

import (
	"fmt"
	"regexp"
	"strings"
)

// Specifier is a dependency specifier: a distribution name, optional
// extras, a constraint set and an optional environment marker, e.g.
//
//	numpy>=1.24
//	dlpy[dev]>=0.1,<1.0
//	pytest-xdist>=3.5; python_version >= "3.10"
type Specifier struct {
	Name        string // normalized distribution name
	DisplayName string // name as written
	Extras      []string
	Constraints Constraints
	Marker      string // raw environment marker, "" if absent

	raw string
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizeName normalizes a distribution name: casefold and collapse
// runs of "-", "_" and "." into a single "-".
func NormalizeName(name string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(name, "-"))
}

// ValidName reports whether the name is a well-formed distribution name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ParseSpecifier parses a dependency specifier.
//
// Constraints may be bare ("numpy>=1.24") or parenthesized
// ("numpy (>=1.24)"). An environment marker after ";" is kept verbatim
// but not evaluated.
func ParseSpecifier(s string) (*Specifier, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty specifier", ErrInvalidSpecifier)
	}

	spec := &Specifier{raw: raw}

	body := raw
	if i := strings.IndexByte(body, ';'); i >= 0 {
		spec.Marker = strings.TrimSpace(body[i+1:])
		body = strings.TrimSpace(body[:i])
	}

	// Name runs up to the first character that cannot be part of one.
	nameEnd := len(body)
	for i, r := range body {
		if !isNameRune(r) {
			nameEnd = i
			break
		}
	}
	name := body[:nameEnd]
	rest := strings.TrimSpace(body[nameEnd:])

	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q in %q", ErrInvalidName, name, raw)
	}
	spec.DisplayName = name
	spec.Name = NormalizeName(name)

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated extras in %q", ErrInvalidSpecifier, raw)
		}
		for _, extra := range strings.Split(rest[1:end], ",") {
			extra = strings.TrimSpace(extra)
			if !ValidName(extra) {
				return nil, fmt.Errorf("%w: bad extra %q in %q", ErrInvalidSpecifier, extra, raw)
			}
			spec.Extras = append(spec.Extras, NormalizeName(extra))
		}
		rest = strings.TrimSpace(rest[end+1:])
	}

	cs, err := ParseConstraints(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSpecifier, raw, err)
	}
	spec.Constraints = cs

	return spec, nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	default:
		return false
	}
}

// String returns the specifier in normalized form.
func (s *Specifier) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if len(s.Extras) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(s.Extras, ","))
		b.WriteByte(']')
	}
	b.WriteString(s.Constraints.String())
	if s.Marker != "" {
		b.WriteString("; ")
		b.WriteString(s.Marker)
	}
	return b.String()
}

// Raw returns the specifier text as supplied to ParseSpecifier.
func (s *Specifier) Raw() string { return s.raw }

// Matches reports whether the given version of the named distribution
// satisfies the specifier.
func (s *Specifier) Matches(v *Version) bool {
	return s.Constraints.Check(v)
}
