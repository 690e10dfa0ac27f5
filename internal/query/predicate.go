package query

import (
	"strings"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// Clause matches one contact field against one pattern.
type Clause struct {
	Field   domain.Field
	Pattern Pattern
}

// Match reports whether the contact's field value matches the pattern.
func (c Clause) Match(contact domain.Contact) bool {
	return c.Pattern.Match(contact.Get(c.Field))
}

// String returns the clause in query syntax.
func (c Clause) String() string {
	return c.Field.String() + ":" + c.Pattern.String()
}

// Predicate is a compiled query: the conjunction of its clauses.
// It holds no state between calls and may be reused across collections
// and goroutines.
type Predicate struct {
	clauses []Clause
}

// MatchAll returns a predicate with no clauses, matching every contact.
func MatchAll() *Predicate {
	return &Predicate{}
}

// Clauses returns a copy of the predicate's clauses in query order.
func (p *Predicate) Clauses() []Clause {
	if p == nil {
		return nil
	}
	out := make([]Clause, len(p.clauses))
	copy(out, p.clauses)
	return out
}

// Match reports whether every clause matches the contact.
// A nil or empty predicate matches everything.
func (p *Predicate) Match(contact domain.Contact) bool {
	if p == nil {
		return true
	}
	for _, c := range p.clauses {
		if !c.Match(contact) {
			return false
		}
	}
	return true
}

// String returns the normalised query text.
func (p *Predicate) String() string {
	if p == nil {
		return ""
	}
	parts := make([]string, len(p.clauses))
	for i, c := range p.clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Apply returns the contacts matched by p, in input order. It never
// deduplicates and never returns nil.
func Apply(p *Predicate, contacts domain.Collection) domain.Collection {
	out := make(domain.Collection, 0, len(contacts))
	for _, c := range contacts {
		if p.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
