package specification

import (
	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/schema"
)

// Specification builds the restriction of a query over entity T. Evaluation
// may attach joins to root and toggle query settings.
type Specification[T any] interface {
	ToPredicate(root criteria.From, query criteria.Query, cb criteria.Builder) (criteria.Predicate, error)
}

type SpecificationFunc[T any] func(root criteria.From, query criteria.Query, cb criteria.Builder) (criteria.Predicate, error)

func (f SpecificationFunc[T]) ToPredicate(root criteria.From, query criteria.Query, cb criteria.Builder) (criteria.Predicate, error) {
	return f(root, query, cb)
}

type predicateSpec[T any] struct {
	predicate *Predicate
	schema    schema.Introspector
	distinct  bool
}

func (p *predicateSpec[T]) ToPredicate(root criteria.From, query criteria.Query, cb criteria.Builder) (criteria.Predicate, error) {
	if query != nil {
		query.Distinct(p.distinct)
	}
	return p.predicate.ToPredicate(p.schema, root, cb)
}

type notSpec[T any] struct {
	spec Specification[T]
}

func (n *notSpec[T]) ToPredicate(root criteria.From, query criteria.Query, cb criteria.Builder) (criteria.Predicate, error) {
	predicate, err := n.spec.ToPredicate(root, query, cb)
	if err != nil || predicate == nil {
		return predicate, err
	}
	return cb.Not(predicate), nil
}

type clause[T any] struct {
	spec       Specification[T]
	connective Connective
}

// foldSpec folds its clauses left to right, each clause joined to the result
// so far by its own connective. Clauses evaluating to nil are skipped.
type foldSpec[T any] struct {
	clauses []clause[T]
}

func (f *foldSpec[T]) ToPredicate(root criteria.From, query criteria.Query, cb criteria.Builder) (criteria.Predicate, error) {
	var result criteria.Predicate
	for _, c := range f.clauses {
		predicate, err := c.spec.ToPredicate(root, query, cb)
		if err != nil {
			return nil, err
		}
		if predicate == nil {
			continue
		}
		if result == nil {
			result = predicate
			continue
		}
		result = c.connective.combine(cb, result, predicate)
	}
	return result, nil
}
