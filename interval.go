package specification

import (
	"fmt"
	"reflect"

	"github.com/mangohow/specification/internal/errors"
)

var (
	ErrBoundsRequired    = errors.New("at least one of min and max is required")
	ErrUndefinedInterval = errors.New("undefined interval")
)

// Envelope tells whether a range bound belongs to the range.
// The zero value is unset and resolves to Inclusive.
type Envelope int

const (
	Inclusive Envelope = iota + 1
	Exclusive
)

func (e Envelope) String() string {
	switch e {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("Envelope(%d)", int(e))
	}
}

type Operation int

const (
	GreaterThan Operation = iota
	GreaterOrEqual
	LessThan
	LessOrEqual
	Between
)

var operationNames = [...]string{"greater-than", "greater-or-equal", "less-than", "less-or-equal", "between"}

func (o Operation) String() string {
	if o >= 0 && int(o) < len(operationNames) {
		return operationNames[o]
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// usesMin reports whether the operation compares against the lower bound.
func (o Operation) usesMin() bool {
	return o == GreaterThan || o == GreaterOrEqual
}

type IntervalKind int

const (
	Closed IntervalKind = iota
	Open
	ClosedOpen
	OpenClosed
	LowerBounded
	UpperBounded
)

var intervalKindNames = [...]string{"closed", "open", "closed-open", "open-closed", "lower-bounded", "upper-bounded"}

func (k IntervalKind) String() string {
	if k >= 0 && int(k) < len(intervalKindNames) {
		return intervalKindNames[k]
	}
	return fmt.Sprintf("IntervalKind(%d)", int(k))
}

// Interval is a classified range and the operations that express it,
// lower bound first.
type Interval struct {
	Kind       IntervalKind
	Operations []Operation
}

type envelopes struct {
	min, max Envelope
}

var boundedIntervals = map[envelopes]Interval{
	{Inclusive, Inclusive}: {Kind: Closed, Operations: []Operation{Between}},
	{Exclusive, Exclusive}: {Kind: Open, Operations: []Operation{GreaterThan, LessThan}},
	{Inclusive, Exclusive}: {Kind: ClosedOpen, Operations: []Operation{GreaterOrEqual, LessThan}},
	{Exclusive, Inclusive}: {Kind: OpenClosed, Operations: []Operation{GreaterThan, LessOrEqual}},
}

// Classify maps two optional bounds and their envelopes to an interval.
// A bound is absent when IsAbsent reports so.
func Classify(min, max any, minEnvelope, maxEnvelope Envelope) (Interval, error) {
	hasMin, hasMax := !IsAbsent(min), !IsAbsent(max)

	switch {
	case hasMin && hasMax:
		interval, ok := boundedIntervals[envelopes{minEnvelope, maxEnvelope}]
		if !ok {
			return Interval{}, errors.Wrapf(ErrUndefinedInterval, "envelopes %s and %s", minEnvelope, maxEnvelope)
		}
		return Interval{Kind: interval.Kind, Operations: append([]Operation(nil), interval.Operations...)}, nil
	case hasMin:
		switch minEnvelope {
		case Inclusive:
			return Interval{Kind: LowerBounded, Operations: []Operation{GreaterOrEqual}}, nil
		case Exclusive:
			return Interval{Kind: LowerBounded, Operations: []Operation{GreaterThan}}, nil
		}
		return Interval{}, errors.Wrapf(ErrUndefinedInterval, "min envelope %s", minEnvelope)
	case hasMax:
		switch maxEnvelope {
		case Inclusive:
			return Interval{Kind: UpperBounded, Operations: []Operation{LessOrEqual}}, nil
		case Exclusive:
			return Interval{Kind: UpperBounded, Operations: []Operation{LessThan}}, nil
		}
		return Interval{}, errors.Wrapf(ErrUndefinedInterval, "max envelope %s", maxEnvelope)
	default:
		return Interval{}, ErrBoundsRequired
	}
}

type nullChecker interface {
	IsNull() bool
}

// IsAbsent reports whether v carries no value: nil, a nil pointer, slice or
// map, or a nullable wrapper whose IsNull reports true.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return true
		}
	}
	if n, ok := v.(nullChecker); ok {
		return n.IsNull()
	}

	// wrappers with pointer receivers passed by value
	if rv.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if n, ok := ptr.Interface().(nullChecker); ok {
			return n.IsNull()
		}
	}
	return false
}
