// Package criteria describes the query graph and predicate factory a query
// engine exposes to the specification builder.
//
// The builder never executes anything. It navigates a From (the query root or
// a join), asks the engine for attribute paths and joins, and combines the
// engine's predicates with a Builder. Implementations own the join state of a
// single query evaluation.
package criteria

// Expression is any node of the query graph that yields a value.
type Expression interface {
	String() string
}

// Path is a navigable reference usable as a predicate operand.
type Path interface {
	Expression
}

// From is a navigable point of the query graph: the query root or a join.
type From interface {
	Path

	// Entity is the mapped entity the point refers to. Element collection
	// joins of scalar values report an empty name.
	Entity() string

	// Get resolves a plain attribute. Unknown attributes are reported here.
	Get(attribute string) (Path, error)

	// Join attaches a new join on attribute.
	Join(attribute string, joinType JoinType) (Join, error)

	// Fetch attaches a new join that also eagerly loads the association.
	Fetch(attribute string, joinType JoinType) (Join, error)

	// Joins lists the joins directly attached to this point.
	Joins() []Join
}

type Join interface {
	From

	Attribute() string

	JoinType() JoinType

	Fetched() bool
}

type Predicate interface {
	Expression

	Operator() Operator
}

// Query carries query-wide settings.
type Query interface {
	Distinct(distinct bool)
}

// Builder creates predicates and expressions.
type Builder interface {
	Equal(x Expression, value any) Predicate
	NotEqual(x Expression, value any) Predicate
	GreaterThan(x Expression, value any) Predicate
	GreaterThanOrEqual(x Expression, value any) Predicate
	LessThan(x Expression, value any) Predicate
	LessThanOrEqual(x Expression, value any) Predicate
	Between(x Expression, lower, upper any) Predicate
	Like(x Expression, pattern string) Predicate
	Upper(x Expression) Expression
	IsNull(x Expression) Predicate
	IsNotNull(x Expression) Predicate
	In(x Expression, values ...any) Predicate
	And(restrictions ...Predicate) Predicate
	Or(restrictions ...Predicate) Predicate
	Not(restriction Predicate) Predicate
}
