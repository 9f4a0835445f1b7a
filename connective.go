package specification

import (
	"fmt"

	"github.com/mangohow/specification/criteria"
)

// Connective joins a predicate to everything folded before it.
type Connective int

const (
	And Connective = iota
	Or
)

func (c Connective) String() string {
	switch c {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return fmt.Sprintf("Connective(%d)", int(c))
	}
}

func (c Connective) combine(cb criteria.Builder, left, right criteria.Predicate) criteria.Predicate {
	if c == Or {
		return cb.Or(left, right)
	}
	return cb.And(left, right)
}
