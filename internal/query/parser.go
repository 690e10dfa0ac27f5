package query

import (
	"strings"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// Parse compiles a query string into a Predicate.
//
// It returns a *domain.QuerySyntaxError naming the offending token when a
// token is not of the form field:pattern or names an unknown field.
func Parse(q string) (*Predicate, error) {
	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return MatchAll(), nil
	}

	clauses := make([]Clause, 0, len(tokens))
	for _, tok := range tokens {
		c, err := parseClause(tok)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return &Predicate{clauses: clauses}, nil
}

// MustParse is like Parse but panics on error. Intended for fixed queries
// in tests and defaults.
func MustParse(q string) *Predicate {
	p, err := Parse(q)
	if err != nil {
		panic(err)
	}
	return p
}

func parseClause(tok string) (Clause, error) {
	name, pattern, ok := strings.Cut(tok, ":")
	if !ok {
		return Clause{}, &domain.QuerySyntaxError{Token: tok, Reason: "expected field:pattern"}
	}
	if name == "" {
		return Clause{}, &domain.QuerySyntaxError{Token: tok, Reason: "missing field name"}
	}

	field, ok := domain.ParseField(name)
	if !ok {
		return Clause{}, &domain.QuerySyntaxError{Token: tok, Reason: "unknown field " + name}
	}

	return Clause{Field: field, Pattern: CompilePattern(pattern)}, nil
}
