package specification

import (
	"strings"

	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/schema"
)

var ErrInvalidPath = errors.New("invalid attribute path")

// Path is a dotted attribute path split into its segments,
// e.g. author.profile.bio.
type Path []string

func ParsePath(s string) Path {
	return strings.Split(s, ".")
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Validate reports an empty path or an empty segment.
func (p Path) Validate() error {
	if len(p) == 0 {
		return errors.Wrapf(ErrInvalidPath, "empty path")
	}
	for i, segment := range p {
		if segment == "" {
			return errors.Wrapf(ErrInvalidPath, "%q has an empty segment at %d", p.String(), i)
		}
	}
	return nil
}

// ResolvePath walks path from root and returns the handle a predicate is
// built on. Association segments reuse a join attached below the current
// point when one is compatible with joinType, otherwise they attach a new
// join, or a fetch join when fetch is set. Element collections are joined
// and end the walk, plain attributes end it through From.Get. A path made
// only of associations resolves to its last join.
//
// Fields the schema does not know are treated as plain attributes, the
// engine reports them.
func ResolvePath(s schema.Introspector, root criteria.From, path Path, joinType criteria.JoinType, fetch bool) (criteria.Path, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}

	from := root
	for _, segment := range path {
		entity := from.Entity()

		switch {
		case s.IsAssociation(entity, segment):
			join, err := reuseOrJoin(from, segment, joinType, fetch)
			if err != nil {
				return nil, errors.Wrapf(err, "resolve %s", path)
			}
			from = join
		case s.IsElementCollection(entity, segment):
			join, err := reuseOrJoin(from, segment, joinType, false)
			if err != nil {
				return nil, errors.Wrapf(err, "resolve %s", path)
			}
			return join, nil
		default:
			attr, err := from.Get(segment)
			if err != nil {
				return nil, errors.Wrapf(err, "resolve %s", path)
			}
			return attr, nil
		}
	}

	return from, nil
}

func reuseOrJoin(from criteria.From, attribute string, joinType criteria.JoinType, fetch bool) (criteria.Join, error) {
	if join := findJoin(from.Joins(), attribute, joinType); join != nil {
		debugLogger.Debug("reuse %s join %s on %s", join.JoinType(), join, attribute)
		return join, nil
	}

	var (
		join criteria.Join
		err  error
	)
	if fetch {
		join, err = from.Fetch(attribute, joinType)
	} else {
		join, err = from.Join(attribute, joinType)
	}
	if err != nil {
		return nil, err
	}

	debugLogger.Debug("create %s join %s on %s, fetch=%v", joinType, join, attribute, fetch)
	return join, nil
}

// findJoin searches joins and, depth first, the joins attached to them.
func findJoin(joins []criteria.Join, attribute string, joinType criteria.JoinType) criteria.Join {
	for _, join := range joins {
		if join.Attribute() == attribute && joinCompatible(join.JoinType(), joinType) {
			return join
		}
		if found := findJoin(join.Joins(), attribute, joinType); found != nil {
			return found
		}
	}
	return nil
}

// joinCompatible reports whether an existing join serves a requested one.
// A LEFT join also serves an INNER request, never the reverse.
func joinCompatible(existing, requested criteria.JoinType) bool {
	return existing == requested || (existing == criteria.LeftJoin && requested == criteria.InnerJoin)
}
