package specification

import "github.com/mangohow/specification/criteria"

const DefaultMinLength = 3

type options struct {
	joinType    criteria.JoinType
	fetch       bool
	not         bool
	connective  Connective
	ignoreCase  bool
	wildcard    Wildcard
	minLength   int
	minEnvelope Envelope
	maxEnvelope Envelope
}

// Option overrides one setting of a single builder call or predicate.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		joinType:    criteria.InnerJoin,
		connective:  And,
		ignoreCase:  true,
		wildcard:    WildcardNone,
		minLength:   DefaultMinLength,
		minEnvelope: Inclusive,
		maxEnvelope: Inclusive,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.minEnvelope == 0 {
		o.minEnvelope = Inclusive
	}
	if o.maxEnvelope == 0 {
		o.maxEnvelope = Inclusive
	}
	return o
}

func WithJoin(joinType criteria.JoinType) Option {
	return func(o *options) {
		o.joinType = joinType
	}
}

// Fetch makes association joins created for the path fetch joins.
func Fetch() Option {
	return func(o *options) {
		o.fetch = true
	}
}

func Not() Option {
	return func(o *options) {
		o.not = true
	}
}

// Connect sets how the predicate combines with the predicates before it.
func Connect(connective Connective) Option {
	return func(o *options) {
		o.connective = connective
	}
}

func IgnoreCase() Option {
	return func(o *options) {
		o.ignoreCase = true
	}
}

func CaseSensitive() Option {
	return func(o *options) {
		o.ignoreCase = false
	}
}

func WithWildcard(wildcard Wildcard) Option {
	return func(o *options) {
		o.wildcard = wildcard
	}
}

// MinLength is the shortest trimmed value, in runes, a pattern match is
// built for.
func MinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

func MinEnvelope(envelope Envelope) Option {
	return func(o *options) {
		o.minEnvelope = envelope
	}
}

func MaxEnvelope(envelope Envelope) Option {
	return func(o *options) {
		o.maxEnvelope = envelope
	}
}
