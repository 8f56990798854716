package rewrite

import (
	"bytes"
	"fmt"
	"regexp"
)

// Rule replaces the version literal found between the first and second
// capture group of Pattern.
type Rule struct {
	Pattern *regexp.Regexp
	Name    string
	// Limit is the maximum number of replacements. Zero replaces every match.
	Limit int
}

// NewRule compiles pattern into a [Rule]. The pattern must contain exactly
// two capture groups flanking the version literal.
func NewRule(name, pattern string, limit int) (*Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %s pattern: %w", name, err)
	}

	if re.NumSubexp() != 2 {
		return nil, fmt.Errorf("%s pattern: want 2 capture groups, got %d", name, re.NumSubexp())
	}

	return &Rule{Name: name, Pattern: re, Limit: limit}, nil
}

// MustNewRule is like [NewRule] but panics on error.
func MustNewRule(name, pattern string, limit int) *Rule {
	r, err := NewRule(name, pattern, limit)
	if err != nil {
		panic(err)
	}

	return r
}

// Apply returns content with the version literal of each match replaced by
// version, and the number of matches replaced. The version is inserted
// literally. Matches where an optional group did not participate are left
// as they are. If nothing is replaced, the returned slice is content itself.
func (r *Rule) Apply(content []byte, version string) ([]byte, int) {
	n := r.Limit
	if n <= 0 {
		n = -1
	}

	var buf bytes.Buffer

	buf.Grow(len(content))

	last, replaced := 0, 0
	for _, m := range r.Pattern.FindAllSubmatchIndex(content, n) {
		if !flanked(m) {
			continue
		}

		// m[3] is the end of the leading group, m[4] the start of the trailing one.
		buf.Write(content[last:m[3]])
		buf.WriteString(version)
		last = m[4]
		replaced++
	}

	if replaced == 0 {
		return content, 0
	}

	buf.Write(content[last:])

	return buf.Bytes(), replaced
}

// Find returns the version literal of the first match.
func (r *Rule) Find(content []byte) (string, bool) {
	for _, m := range r.Pattern.FindAllSubmatchIndex(content, -1) {
		if flanked(m) {
			return string(content[m[3]:m[4]]), true
		}
	}

	return "", false
}

// flanked reports whether both capture groups took part in match m.
func flanked(m []int) bool {
	return m[2] >= 0 && m[4] >= 0
}

func (r *Rule) String() string {
	return r.Name
}
