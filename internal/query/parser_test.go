package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

func fixture() domain.Collection {
	return domain.Collection{
		{Name: "John Smith", Email: "john@example.com", Phone: "0447784777", Address: "22 Dorcas Street"},
		{Name: "Jones Baker", Email: "jones@other.org", Phone: "0400000001", Address: "1 High Street"},
		{Name: "Ryan Anderson", Email: "ryan@example.com", Phone: "", Address: ""},
	}
}

func TestParse_EmptyQueryIsIdentity(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		p, err := Parse(q)
		require.NoError(t, err)
		assert.Empty(t, p.Clauses())

		coll := fixture()
		assert.Equal(t, coll, Apply(p, coll))
	}
}

func TestParse_Clauses(t *testing.T) {
	p, err := Parse("NAME:jo*  email:*@example.com")
	require.NoError(t, err)

	clauses := p.Clauses()
	require.Len(t, clauses, 2)
	assert.Equal(t, domain.FieldName, clauses[0].Field)
	assert.Equal(t, "jo*", clauses[0].Pattern.String())
	assert.Equal(t, domain.FieldEmail, clauses[1].Field)
	assert.Equal(t, "name:jo* email:*@example.com", p.String())
}

func TestParse_FieldAlias(t *testing.T) {
	p, err := Parse("phone_number:0447*")
	require.NoError(t, err)
	assert.Equal(t, domain.FieldPhone, p.Clauses()[0].Field)
}

func TestParse_PatternMayContainColon(t *testing.T) {
	p, err := Parse("address:unit:4*")
	require.NoError(t, err)
	assert.True(t, p.Match(domain.Contact{Address: "Unit:4 Main Rd"}))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		token string
	}{
		{"unknown field", "nickname:bob", "nickname:bob"},
		{"missing colon", "john", "john"},
		{"missing field", ":john", ":john"},
		{"second token bad", "name:john bad", "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.query)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, domain.ErrQuerySyntax))

			var qerr *domain.QuerySyntaxError
			require.True(t, errors.As(err, &qerr))
			assert.Equal(t, tt.token, qerr.Token)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("bogus") })
	assert.NotPanics(t, func() { MustParse("name:*") })
}

func TestApply_ANDSemantics(t *testing.T) {
	p := MustParse("name:jo* email:*@example.com")

	got := Apply(p, fixture())

	require.Len(t, got, 1)
	assert.Equal(t, "John Smith", got[0].Name)
}

func TestApply_LiteralIsCaseInsensitiveEquality(t *testing.T) {
	coll := fixture()

	assert.Len(t, Apply(MustParse("name:JOHN"), coll), 0)
	got := Apply(MustParse("email:JOHN@EXAMPLE.COM"), coll)
	require.Len(t, got, 1)
	assert.Equal(t, "John Smith", got[0].Name)
}

func TestApply_StarMatchesEmptyFields(t *testing.T) {
	coll := fixture()
	assert.Equal(t, coll, Apply(MustParse("phone:* address:*"), coll))
}

func TestApply_DuplicateFieldClausesAreConjunctive(t *testing.T) {
	coll := fixture()

	assert.Empty(t, Apply(MustParse("name:john* name:ryan*"), coll))
	got := Apply(MustParse("name:*an* name:*son"), coll)
	require.Len(t, got, 1)
	assert.Equal(t, "Ryan Anderson", got[0].Name)
}

func TestApply_ClauseOrderDoesNotMatter(t *testing.T) {
	coll := fixture()
	a := Apply(MustParse("email:*@example.com name:*an*"), coll)
	b := Apply(MustParse("name:*an* email:*@example.com"), coll)
	assert.Equal(t, a, b)
}

func TestApply_PreservesOrderAndDuplicates(t *testing.T) {
	c := fixture()
	coll := domain.Collection{c[2], c[0], c[2]}

	got := Apply(MustParse("email:*@example.com"), coll)
	assert.Equal(t, coll, got)
}

func TestApply_NoMatchIsEmptyNotNil(t *testing.T) {
	got := Apply(MustParse("name:nobody"), fixture())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_NilPredicateIsIdentity(t *testing.T) {
	coll := fixture()
	assert.Equal(t, coll, Apply(nil, coll))
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	coll := fixture()
	before := coll.Clone()
	_ = Apply(MustParse("name:ryan*"), coll)
	assert.Equal(t, before, coll)
}

func TestPredicate_ReusableAcrossCollections(t *testing.T) {
	p := MustParse("email:*@example.com")
	first := Apply(p, fixture())
	second := Apply(p, fixture()[:1])

	assert.Len(t, first, 2)
	assert.Len(t, second, 1)
}
