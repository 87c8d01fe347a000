package semblance

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Clause is the leaf payload of a statement: template content with
// $placeholder slots plus the assertion made about the terms filling them.
// The set of implementations is closed; Predicate asserts the template
// itself, Comparison asserts a numeric relation about it.
type Clause interface {
	fmt.Stringer

	// Content returns the raw template.
	Content() string

	// Slots returns the placeholder names in template order.
	Slots() []string

	// Interchangeable returns groups of slot positions whose reordering
	// preserves meaning, declared by indexed placeholders sharing a base
	// name, like $partner1 and $partner2.
	Interchangeable() [][]int

	// Negated returns the clause asserting the opposite.
	Negated() Clause

	implies(Clause) bool
	means(Clause) bool
	contradicts(Clause) bool
}

var placeholderPattern = regexp.MustCompile(`\$[a-zA-Z_]\w*`)

// parseTemplate extracts the placeholder slots of content and derives the
// interchangeable position groups from indexed placeholders. A repeated
// placeholder or a base name with a single indexed position is a
// construction error.
func parseTemplate(content string) ([]string, [][]int, error) {
	raw := placeholderPattern.FindAllString(content, -1)
	slots := make([]string, len(raw))
	seen := map[string]bool{}
	indexed := map[string][]int{}
	var bases []string
	for i, s := range raw {
		name := s[1:]
		if seen[name] {
			return nil, nil, fmt.Errorf("placeholder $%s: %w", name, ErrRepeatedPlaceholder)
		}
		seen[name] = true
		slots[i] = name

		base := strings.TrimRight(name, "0123456789")
		if base == name || base == "" {
			continue
		}
		if _, ok := indexed[base]; !ok {
			bases = append(bases, base)
		}
		indexed[base] = append(indexed[base], i)
	}
	var groups [][]int
	for _, base := range bases {
		positions := indexed[base]
		if len(positions) < 2 {
			return nil, nil, fmt.Errorf("placeholder $%s%d: %w", base, 1, ErrDanglingIndex)
		}
		sort.Ints(positions)
		groups = append(groups, positions)
	}
	return slots, groups, nil
}

// Predicate is template content plus a truth flag. Two predicates with the
// same content and truth imply and mean each other; the same content with
// opposite truth contradicts.
type Predicate struct {
	content string
	truth   bool
	slots   []string
	groups  [][]int
}

// NewPredicate parses content into a predicate asserting it with the given
// truth.
func NewPredicate(content string, truth bool) (Predicate, error) {
	slots, groups, err := parseTemplate(content)
	if err != nil {
		return Predicate{}, err
	}
	return Predicate{content: content, truth: truth, slots: slots, groups: groups}, nil
}

// MustPredicate is NewPredicate for literals; it panics on a malformed
// template.
func MustPredicate(content string, truth bool) Predicate {
	p, err := NewPredicate(content, truth)
	if err != nil {
		panic(err)
	}
	return p
}

// Truth reports whether the predicate asserts its content or its negation.
func (p Predicate) Truth() bool { return p.truth }

func (p Predicate) Content() string { return p.content }

func (p Predicate) Slots() []string {
	ss := make([]string, len(p.slots))
	copy(ss, p.slots)
	return ss
}

func (p Predicate) Interchangeable() [][]int { return p.groups }

// Negated returns the predicate with its truth flipped.
func (p Predicate) Negated() Clause {
	p.truth = !p.truth
	return p
}

func (p Predicate) String() string {
	if !p.truth {
		return "it was false that " + p.content
	}
	return p.content
}

func (p Predicate) implies(o Clause) bool {
	q, ok := o.(Predicate)
	return ok && p.content == q.content && p.truth == q.truth
}

func (p Predicate) means(o Clause) bool {
	return p.implies(o)
}

func (p Predicate) contradicts(o Clause) bool {
	q, ok := o.(Predicate)
	return ok && p.content == q.content && p.truth != q.truth
}
