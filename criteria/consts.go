package criteria

import "strings"

type Operator string

const (
	And       Operator = "AND"
	Or        Operator = "OR"
	Not       Operator = "NOT"
	In        Operator = "IN"
	Like      Operator = "LIKE"
	Eq        Operator = "="
	Ne        Operator = "<>"
	Gt        Operator = ">"
	Ge        Operator = ">="
	Lt        Operator = "<"
	Le        Operator = "<="
	Between   Operator = "BETWEEN"
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"
	Upper     Operator = "UPPER"
)

type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
)

func (j JoinType) String() string {
	switch j {
	case InnerJoin:
		return "INNER"
	case LeftJoin:
		return "LEFT"
	case RightJoin:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// ParseJoinType accepts inner, left and right in any case.
func ParseJoinType(s string) (JoinType, bool) {
	switch strings.ToLower(s) {
	case "inner":
		return InnerJoin, true
	case "left":
		return LeftJoin, true
	case "right":
		return RightJoin, true
	default:
		return InnerJoin, false
	}
}
