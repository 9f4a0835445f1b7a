package specification

import (
	"testing"

	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/criteria/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, q *memory.Query, p *Predicate) string {
	t.Helper()
	predicate, err := p.ToPredicate(testSchema, q.Root(), memory.NewBuilder())
	require.NoError(t, err)
	return predicate.String()
}

func TestPredicateDefaults(t *testing.T) {
	p, err := NewEquality(ParsePath("name"), "Ann")
	require.NoError(t, err)

	assert.Equal(t, Path{"name"}, p.Path())
	assert.Equal(t, criteria.InnerJoin, p.JoinType())
	assert.False(t, p.Fetched())
	assert.False(t, p.Negated())
	assert.Equal(t, And, p.Connective())
	assert.Equal(t, Equality{Value: "Ann"}, p.Payload())

	_, err = NewEquality(Path{}, "Ann")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestPredicateOptions(t *testing.T) {
	p, err := NewPatternMatch(ParsePath("profile.bio"), "go",
		WithJoin(criteria.LeftJoin), Fetch(), Not(), Connect(Or),
		CaseSensitive(), WithWildcard(WildcardTrailing), MinLength(1))
	require.NoError(t, err)

	assert.Equal(t, criteria.LeftJoin, p.JoinType())
	assert.True(t, p.Fetched())
	assert.True(t, p.Negated())
	assert.Equal(t, Or, p.Connective())
	assert.Equal(t, PatternMatch{Value: "go", IgnoreCase: false, Wildcard: WildcardTrailing, MinLength: 1}, p.Payload())
}

func TestEqualityToPredicate(t *testing.T) {
	q := newQuery(t)

	p, err := NewEquality(ParsePath("name"), "Ann")
	require.NoError(t, err)
	assert.Equal(t, "author.name = 'Ann'", render(t, q, p))

	p, err = NewEquality(ParsePath("name"), "Ann", Not())
	require.NoError(t, err)
	assert.Equal(t, "author.name <> 'Ann'", render(t, q, p))
}

func TestMembershipToPredicate(t *testing.T) {
	q := newQuery(t)

	p, err := NewMembership(ParsePath("books.title"), Values([]string{"Dune", "Emma"}))
	require.NoError(t, err)
	assert.Equal(t, "author_books.title IN ('Dune', 'Emma')", render(t, q, p))

	p, err = NewMembership(ParsePath("age"), []any{30, 40}, Not())
	require.NoError(t, err)
	assert.Equal(t, "NOT (author.age IN (30, 40))", render(t, q, p))
}

func TestPatternMatchToPredicate(t *testing.T) {
	q := newQuery(t)

	p, err := NewPatternMatch(ParsePath("name"), "abc", WithWildcard(WildcardBoth))
	require.NoError(t, err)
	assert.Equal(t, "UPPER(author.name) LIKE '%ABC%'", render(t, q, p))

	p, err = NewPatternMatch(ParsePath("name"), "straße", WithWildcard(WildcardLeading))
	require.NoError(t, err)
	assert.Equal(t, "UPPER(author.name) LIKE '%STRASSE'", render(t, q, p))

	p, err = NewPatternMatch(ParsePath("name"), "Abc", CaseSensitive(), Not())
	require.NoError(t, err)
	assert.Equal(t, "NOT (author.name LIKE 'Abc')", render(t, q, p))
}

func TestComparisonToPredicate(t *testing.T) {
	q := newQuery(t)

	closed, err := NewComparison(ParsePath("age"), 5, 10)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, Comparison{Operation: Between, Min: 5, Max: 10}, closed[0].Payload())
	assert.Equal(t, "author.age BETWEEN 5 AND 10", render(t, q, closed[0]))

	open, err := NewComparison(ParsePath("age"), 5, 10, MinEnvelope(Exclusive), MaxEnvelope(Exclusive))
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "author.age > 5", render(t, q, open[0]))
	assert.Equal(t, "author.age < 10", render(t, q, open[1]))

	lower, err := NewComparison(ParsePath("age"), 5, nil)
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, "author.age >= 5", render(t, q, lower[0]))

	upper, err := NewComparison(ParsePath("age"), nil, 10, Not())
	require.NoError(t, err)
	require.Len(t, upper, 1)
	assert.Equal(t, "NOT (author.age <= 10)", render(t, q, upper[0]))

	_, err = NewComparison(ParsePath("age"), nil, nil)
	assert.ErrorIs(t, err, ErrBoundsRequired)
}

func TestNullCheckUsesLeftJoin(t *testing.T) {
	q := newQuery(t)

	p, err := NewNullCheck(ParsePath("profile"), Not(), WithJoin(criteria.InnerJoin))
	require.NoError(t, err)
	assert.Equal(t, "author_profile IS NOT NULL", render(t, q, p))

	joins := q.Joins()
	require.Len(t, joins, 1)
	assert.Equal(t, criteria.LeftJoin, joins[0].JoinType())

	p, err = NewNullCheck(ParsePath("email"))
	require.NoError(t, err)
	assert.Equal(t, "author.email IS NULL", render(t, q, p))
}

func TestPredicatePathIsCopied(t *testing.T) {
	path := ParsePath("profile.bio")
	p, err := NewNullCheck(path)
	require.NoError(t, err)

	path[1] = "avatar"
	p.Path()[0] = "books"
	assert.Equal(t, Path{"profile", "bio"}, p.Path())
}
