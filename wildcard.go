package specification

import "fmt"

// Wildcard places % around a pattern value.
type Wildcard int

const (
	WildcardNone Wildcard = iota
	WildcardLeading
	WildcardTrailing
	WildcardBoth
)

func (w Wildcard) Apply(value string) string {
	switch w {
	case WildcardLeading:
		return "%" + value
	case WildcardTrailing:
		return value + "%"
	case WildcardBoth:
		return "%" + value + "%"
	default:
		return value
	}
}

func (w Wildcard) String() string {
	switch w {
	case WildcardNone:
		return "none"
	case WildcardLeading:
		return "leading"
	case WildcardTrailing:
		return "trailing"
	case WildcardBoth:
		return "both"
	default:
		return fmt.Sprintf("Wildcard(%d)", int(w))
	}
}
