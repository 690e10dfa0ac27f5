package query

import "strings"

// Wildcard is the pattern metacharacter matching any run of characters.
const Wildcard = "*"

// Pattern is a compiled, case-insensitive field pattern.
type Pattern struct {
	raw      string
	segments []string // lowercased literal segments; a single segment means exact match
}

// CompilePattern compiles a pattern. It never fails: every string is a
// valid pattern.
func CompilePattern(p string) Pattern {
	lower := strings.ToLower(p)
	if !strings.Contains(lower, Wildcard) {
		return Pattern{raw: p, segments: []string{lower}}
	}
	return Pattern{raw: p, segments: strings.Split(lower, Wildcard)}
}

// String returns the pattern as written.
func (p Pattern) String() string {
	return p.raw
}

// IsWildcard reports whether the pattern contains at least one '*'.
func (p Pattern) IsWildcard() bool {
	return len(p.segments) > 1
}

// Match reports whether value matches the pattern, ignoring case.
//
// For a wildcard pattern split into segments s0*s1*...*sn, the value must
// start with s0, end with sn, and contain s1..sn-1 in order in between
// without overlapping.
func (p Pattern) Match(value string) bool {
	v := strings.ToLower(value)
	if len(p.segments) == 0 {
		return v == ""
	}
	if !p.IsWildcard() {
		return v == p.segments[0]
	}

	first := p.segments[0]
	last := p.segments[len(p.segments)-1]

	if len(v) < len(first)+len(last) {
		return false
	}
	if !strings.HasPrefix(v, first) || !strings.HasSuffix(v, last) {
		return false
	}

	// Interior segments must fit between the anchored prefix and suffix.
	middle := v[len(first) : len(v)-len(last)]
	for _, seg := range p.segments[1 : len(p.segments)-1] {
		if seg == "" {
			continue
		}
		i := strings.Index(middle, seg)
		if i < 0 {
			return false
		}
		middle = middle[i+len(seg):]
	}
	return true
}
