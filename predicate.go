package specification

import (
	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Payload is the kind specific part of a Predicate. It is one of Equality,
// Membership, PatternMatch, Comparison or NullCheck.
type Payload interface {
	payload()
}

type Equality struct {
	Value any
}

type Membership struct {
	Values []any
}

type PatternMatch struct {
	Value      string
	IgnoreCase bool
	Wildcard   Wildcard
	MinLength  int
}

// Comparison compares against Min, Max or both, depending on Operation.
type Comparison struct {
	Operation Operation
	Min       any
	Max       any
}

type NullCheck struct{}

func (Equality) payload()     {}
func (Membership) payload()   {}
func (PatternMatch) payload() {}
func (Comparison) payload()   {}
func (NullCheck) payload()    {}

// Predicate is a single filter on an attribute path. It is immutable once
// constructed.
type Predicate struct {
	path       Path
	joinType   criteria.JoinType
	fetch      bool
	not        bool
	connective Connective
	payload    Payload
}

func newPredicate(path Path, payload Payload, o options) (*Predicate, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}

	return &Predicate{
		path:       append(Path(nil), path...),
		joinType:   o.joinType,
		fetch:      o.fetch,
		not:        o.not,
		connective: o.connective,
		payload:    payload,
	}, nil
}

func NewEquality(path Path, value any, opts ...Option) (*Predicate, error) {
	return newPredicate(path, Equality{Value: value}, newOptions(opts))
}

func NewMembership(path Path, values []any, opts ...Option) (*Predicate, error) {
	return newPredicate(path, Membership{Values: append([]any(nil), values...)}, newOptions(opts))
}

func NewPatternMatch(path Path, value string, opts ...Option) (*Predicate, error) {
	o := newOptions(opts)
	return newPredicate(path, PatternMatch{
		Value:      value,
		IgnoreCase: o.ignoreCase,
		Wildcard:   o.wildcard,
		MinLength:  o.minLength,
	}, o)
}

// NewComparison classifies the bounds with the configured envelopes and
// returns one predicate per operation, all on path.
func NewComparison(path Path, min, max any, opts ...Option) ([]*Predicate, error) {
	o := newOptions(opts)
	interval, err := Classify(min, max, o.minEnvelope, o.maxEnvelope)
	if err != nil {
		return nil, errors.Wrapf(err, "compare %s", path)
	}

	predicates := make([]*Predicate, 0, len(interval.Operations))
	for _, op := range interval.Operations {
		comparison := Comparison{Operation: op}
		switch {
		case op == Between:
			comparison.Min, comparison.Max = min, max
		case op.usesMin():
			comparison.Min = min
		default:
			comparison.Max = max
		}

		p, err := newPredicate(path, comparison, o)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, p)
	}
	return predicates, nil
}

// NewNullCheck tests path for null, or for not null when negated. The path
// is always resolved with a LEFT join.
func NewNullCheck(path Path, opts ...Option) (*Predicate, error) {
	return newPredicate(path, NullCheck{}, newOptions(opts))
}

func (p *Predicate) Path() Path {
	return append(Path(nil), p.path...)
}

func (p *Predicate) JoinType() criteria.JoinType {
	return p.joinType
}

func (p *Predicate) Fetched() bool {
	return p.fetch
}

func (p *Predicate) Negated() bool {
	return p.not
}

func (p *Predicate) Connective() Connective {
	return p.connective
}

func (p *Predicate) Payload() Payload {
	return p.payload
}

// ToPredicate resolves the path from root and builds the engine predicate.
func (p *Predicate) ToPredicate(s schema.Introspector, root criteria.From, cb criteria.Builder) (criteria.Predicate, error) {
	joinType := p.joinType
	if _, ok := p.payload.(NullCheck); ok {
		joinType = criteria.LeftJoin
	}

	x, err := ResolvePath(s, root, p.path, joinType, p.fetch)
	if err != nil {
		return nil, err
	}

	var predicate criteria.Predicate
	switch payload := p.payload.(type) {
	case Equality:
		if p.not {
			return cb.NotEqual(x, payload.Value), nil
		}
		return cb.Equal(x, payload.Value), nil
	case NullCheck:
		if p.not {
			return cb.IsNotNull(x), nil
		}
		return cb.IsNull(x), nil
	case Membership:
		predicate = cb.In(x, payload.Values...)
	case PatternMatch:
		predicate = patternMatch(cb, x, payload)
	case Comparison:
		predicate = compare(cb, x, payload)
	default:
		return nil, errors.Errorf("unsupported predicate payload %T", p.payload)
	}

	if p.not {
		predicate = cb.Not(predicate)
	}
	return predicate, nil
}

func patternMatch(cb criteria.Builder, x criteria.Path, payload PatternMatch) criteria.Predicate {
	if !payload.IgnoreCase {
		return cb.Like(x, payload.Wildcard.Apply(payload.Value))
	}

	value := cases.Upper(language.Und).String(payload.Value)
	return cb.Like(cb.Upper(x), payload.Wildcard.Apply(value))
}

func compare(cb criteria.Builder, x criteria.Path, payload Comparison) criteria.Predicate {
	switch payload.Operation {
	case GreaterThan:
		return cb.GreaterThan(x, payload.Min)
	case GreaterOrEqual:
		return cb.GreaterThanOrEqual(x, payload.Min)
	case LessThan:
		return cb.LessThan(x, payload.Max)
	case LessOrEqual:
		return cb.LessThanOrEqual(x, payload.Max)
	default:
		return cb.Between(x, payload.Min, payload.Max)
	}
}
