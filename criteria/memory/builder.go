package memory

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mangohow/mangokit/tools/stream"
	"github.com/mangohow/specification/criteria"
)

// Predicate is a rendered restriction.
type Predicate struct {
	op   criteria.Operator
	text string
}

func (p *Predicate) String() string {
	return p.text
}

func (p *Predicate) Operator() criteria.Operator {
	return p.op
}

type expression string

func (e expression) String() string {
	return string(e)
}

type builder struct{}

// NewBuilder returns a criteria.Builder whose predicates render as text.
func NewBuilder() criteria.Builder {
	return builder{}
}

func (builder) binary(x criteria.Expression, op criteria.Operator, value any) criteria.Predicate {
	return &Predicate{op: op, text: fmt.Sprintf("%s %s %s", x, op, Literal(value))}
}

func (b builder) Equal(x criteria.Expression, value any) criteria.Predicate {
	return b.binary(x, criteria.Eq, value)
}

func (b builder) NotEqual(x criteria.Expression, value any) criteria.Predicate {
	return b.binary(x, criteria.Ne, value)
}

func (b builder) GreaterThan(x criteria.Expression, value any) criteria.Predicate {
	return b.binary(x, criteria.Gt, value)
}

func (b builder) GreaterThanOrEqual(x criteria.Expression, value any) criteria.Predicate {
	return b.binary(x, criteria.Ge, value)
}

func (b builder) LessThan(x criteria.Expression, value any) criteria.Predicate {
	return b.binary(x, criteria.Lt, value)
}

func (b builder) LessThanOrEqual(x criteria.Expression, value any) criteria.Predicate {
	return b.binary(x, criteria.Le, value)
}

func (builder) Between(x criteria.Expression, lower, upper any) criteria.Predicate {
	return &Predicate{
		op:   criteria.Between,
		text: fmt.Sprintf("%s BETWEEN %s AND %s", x, Literal(lower), Literal(upper)),
	}
}

func (b builder) Like(x criteria.Expression, pattern string) criteria.Predicate {
	return b.binary(x, criteria.Like, pattern)
}

func (builder) Upper(x criteria.Expression) criteria.Expression {
	return expression(fmt.Sprintf("%s(%s)", criteria.Upper, x))
}

func (builder) IsNull(x criteria.Expression) criteria.Predicate {
	return &Predicate{op: criteria.IsNull, text: fmt.Sprintf("%s %s", x, criteria.IsNull)}
}

func (builder) IsNotNull(x criteria.Expression) criteria.Predicate {
	return &Predicate{op: criteria.IsNotNull, text: fmt.Sprintf("%s %s", x, criteria.IsNotNull)}
}

func (builder) In(x criteria.Expression, values ...any) criteria.Predicate {
	return &Predicate{
		op:   criteria.In,
		text: fmt.Sprintf("%s IN (%s)", x, strings.Join(stream.Map(values, Literal), ", ")),
	}
}

func (b builder) And(restrictions ...criteria.Predicate) criteria.Predicate {
	return b.junction(criteria.And, "TRUE", restrictions)
}

func (b builder) Or(restrictions ...criteria.Predicate) criteria.Predicate {
	return b.junction(criteria.Or, "FALSE", restrictions)
}

// junction of no restrictions is its identity element.
func (builder) junction(op criteria.Operator, identity string, restrictions []criteria.Predicate) criteria.Predicate {
	if len(restrictions) == 0 {
		return &Predicate{op: op, text: identity}
	}

	parts := stream.Map(restrictions, func(p criteria.Predicate) string {
		return p.String()
	})
	return &Predicate{op: op, text: "(" + strings.Join(parts, " "+string(op)+" ") + ")"}
}

func (builder) Not(restriction criteria.Predicate) criteria.Predicate {
	text := restriction.String()
	switch restriction.Operator() {
	case criteria.And, criteria.Or:
		if strings.HasPrefix(text, "(") {
			return &Predicate{op: criteria.Not, text: "NOT " + text}
		}
	}
	return &Predicate{op: criteria.Not, text: "NOT (" + text + ")"}
}

// Literal renders a value the way it appears in a rendered predicate.
func Literal(value any) string {
	if valuer, ok := value.(driver.Valuer); ok {
		v, err := valuer.Value()
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}
		value = v
	}

	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(v)
	case []byte:
		return quote(string(v))
	case time.Time:
		return quote(v.Format(time.RFC3339Nano))
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "NULL"
		}
		return Literal(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", value)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
