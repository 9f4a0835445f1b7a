package specification

import (
	"strings"
	"unicode/utf8"

	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/schema"
)

type entry[T any] struct {
	predicate  *Predicate
	spec       Specification[T]
	not        bool
	connective Connective
}

// Builder accumulates filters on entity T in call order. Calls whose input is
// absent add nothing. A Builder is not safe for concurrent use and is meant
// to be built once.
//
//	spec, err := specification.New[model.User](model.Schema).
//		Equal("username", form.Username).
//		Like("profile.bio", form.Bio, specification.WithWildcard(specification.WildcardBoth)).
//		IsNull("email", form.NoEmail, specification.Connect(specification.Or)).
//		Build()
type Builder[T any] struct {
	schema   schema.Introspector
	distinct bool
	entries  []entry[T]
	err      error
}

func New[T any](s schema.Introspector) *Builder[T] {
	return &Builder[T]{
		schema:   s,
		distinct: true,
	}
}

// Distinct sets the query wide distinct flag every predicate applies.
func (b *Builder[T]) Distinct(distinct bool) *Builder[T] {
	b.distinct = distinct
	return b
}

func (b *Builder[T]) Equal(path string, value any, opts ...Option) *Builder[T] {
	return b.EqualPath(ParsePath(path), value, opts...)
}

func (b *Builder[T]) EqualPath(path Path, value any, opts ...Option) *Builder[T] {
	if IsAbsent(value) {
		return b
	}
	return b.add(NewEquality(path, value, opts...))
}

func (b *Builder[T]) NotEqual(path string, value any, opts ...Option) *Builder[T] {
	return b.NotEqualPath(ParsePath(path), value, opts...)
}

func (b *Builder[T]) NotEqualPath(path Path, value any, opts ...Option) *Builder[T] {
	return b.EqualPath(path, value, withNot(opts)...)
}

func (b *Builder[T]) In(path string, values []any, opts ...Option) *Builder[T] {
	return b.InPath(ParsePath(path), values, opts...)
}

func (b *Builder[T]) InPath(path Path, values []any, opts ...Option) *Builder[T] {
	if len(values) == 0 {
		return b
	}
	return b.add(NewMembership(path, values, opts...))
}

// Like adds a pattern match unless value is empty or, trimmed, shorter than
// the minimum length. The pattern itself uses value untrimmed.
func (b *Builder[T]) Like(path string, value string, opts ...Option) *Builder[T] {
	return b.LikePath(ParsePath(path), value, opts...)
}

func (b *Builder[T]) LikePath(path Path, value string, opts ...Option) *Builder[T] {
	if value == "" {
		return b
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) < newOptions(opts).minLength {
		return b
	}
	return b.add(NewPatternMatch(path, value, opts...))
}

// Between adds the predicates of the interval between min and max, unless
// both are absent.
func (b *Builder[T]) Between(path string, min, max any, opts ...Option) *Builder[T] {
	return b.BetweenPath(ParsePath(path), min, max, opts...)
}

func (b *Builder[T]) BetweenPath(path Path, min, max any, opts ...Option) *Builder[T] {
	if IsAbsent(min) && IsAbsent(max) {
		return b
	}

	predicates, err := NewComparison(path, min, max, opts...)
	if err != nil {
		return b.fail(err)
	}
	for _, p := range predicates {
		b.add(p, nil)
	}
	return b
}

// IsNull adds a null check when active is set.
func (b *Builder[T]) IsNull(path string, active bool, opts ...Option) *Builder[T] {
	return b.IsNullPath(ParsePath(path), active, opts...)
}

func (b *Builder[T]) IsNullPath(path Path, active bool, opts ...Option) *Builder[T] {
	if !active {
		return b
	}
	return b.add(NewNullCheck(path, opts...))
}

func (b *Builder[T]) IsNotNull(path string, opts ...Option) *Builder[T] {
	return b.IsNotNullPath(ParsePath(path), opts...)
}

func (b *Builder[T]) IsNotNullPath(path Path, opts ...Option) *Builder[T] {
	return b.IsNullPath(path, true, withNot(opts)...)
}

// Inner adds spec as a single clause. Only the Not and Connect options apply.
func (b *Builder[T]) Inner(spec Specification[T], opts ...Option) *Builder[T] {
	if spec == nil {
		return b
	}

	o := newOptions(opts)
	b.entries = append(b.entries, entry[T]{spec: spec, not: o.not, connective: o.connective})
	return b
}

func (b *Builder[T]) add(p *Predicate, err error) *Builder[T] {
	if err != nil {
		return b.fail(err)
	}
	b.entries = append(b.entries, entry[T]{predicate: p, connective: p.connective})
	return b
}

// fail keeps the first error, Build reports it.
func (b *Builder[T]) fail(err error) *Builder[T] {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Build folds the accumulated clauses. A nil Specification with a nil error
// means nothing is to be filtered.
func (b *Builder[T]) Build() (Specification[T], error) {
	if b.err != nil {
		return nil, errors.Wrapf(b.err, "build specification of %s", schema.EntityName[T]())
	}
	if len(b.entries) == 0 {
		return nil, nil
	}

	clauses := make([]clause[T], 0, len(b.entries))
	for _, e := range b.entries {
		var spec Specification[T]
		if e.predicate != nil {
			spec = &predicateSpec[T]{predicate: e.predicate, schema: b.schema, distinct: b.distinct}
		} else {
			spec = e.spec
			if e.not {
				spec = &notSpec[T]{spec: spec}
			}
		}
		clauses = append(clauses, clause[T]{spec: spec, connective: e.connective})
	}

	debugLogger.Debug("fold %d clauses of %s", len(clauses), schema.EntityName[T]())
	if len(clauses) == 1 {
		return clauses[0].spec, nil
	}
	return &foldSpec[T]{clauses: clauses}, nil
}

// Values converts a typed slice for In.
func Values[V any](vs []V) []any {
	if vs == nil {
		return nil
	}

	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = v
	}
	return res
}

func withNot(opts []Option) []Option {
	return append(opts[:len(opts):len(opts)], Not())
}
