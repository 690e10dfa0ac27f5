// Package query compiles contact search strings into reusable predicates.
//
// # Syntax
//
// A query is a whitespace-separated list of clauses:
//
//	name:jo* email:*@example.com
//
// Each clause is field:pattern. The field is one of the contact fields
// (name, email, phone, address; matched case-insensitively). All clauses must
// match (implicit AND); there is no OR, NOT or grouping.
//
// A pattern without '*' matches a value that is equal to it ignoring case.
// Each '*' stands for any run of characters, including none:
//
//	jo*    matches "John" and "jones", not "mjoe"
//	*an    matches "Ryan", not "Andy"
//	*an*   matches "Anderson"
//	*      matches every value, including ""
//
// An empty query matches every contact.
//
// # Limitations
//
// Patterns are single tokens: a pattern cannot contain whitespace, and there
// is no quoting. The first ':' in a token separates field from pattern, so a
// pattern may itself contain ':'.
package query
