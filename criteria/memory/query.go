// Package memory is a query engine that keeps the query graph in memory and
// renders predicates as text. It validates navigation against a schema
// descriptor and never executes anything.
package memory

import (
	"fmt"
	"strings"

	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/internal/utils/stringutils"
	"github.com/mangohow/specification/schema"
)

var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrNotJoinable      = errors.New("attribute is not joinable")
	ErrUnknownEntity    = errors.New("unknown entity")
)

// Query is one evaluation of a query over a root entity. It owns the join
// tree and is not safe for concurrent use.
type Query struct {
	descriptor *schema.Descriptor
	root       *From
	distinct   bool

	aliases map[string]int
	joins   []criteria.Join
}

func NewQuery(d *schema.Descriptor, entity string) (*Query, error) {
	if !d.HasEntity(entity) {
		return nil, errors.Wrapf(ErrUnknownEntity, "query %s", entity)
	}

	q := &Query{
		descriptor: d,
		aliases:    make(map[string]int),
	}
	q.root = &From{
		query:  q,
		entity: entity,
		alias:  q.alias(stringutils.LowerFirst(entity)),
	}
	return q, nil
}

func (q *Query) Root() *From {
	return q.root
}

func (q *Query) Distinct(distinct bool) {
	q.distinct = distinct
}

func (q *Query) IsDistinct() bool {
	return q.distinct
}

// Joins lists every join of the query in creation order.
func (q *Query) Joins() []criteria.Join {
	return append([]criteria.Join(nil), q.joins...)
}

// Explain renders the join tree, one join per line indented by depth.
func (q *Query) Explain() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("FROM %s AS %s\n", q.root.entity, q.root.alias))
	q.root.explain(&builder, 1)
	return builder.String()
}

// Render renders the whole query with where as its restriction. A nil where
// renders no WHERE clause.
func (q *Query) Render(where criteria.Predicate) string {
	builder := strings.Builder{}
	builder.WriteString("SELECT ")
	if q.distinct {
		builder.WriteString("DISTINCT ")
	}
	builder.WriteString(q.root.alias)
	builder.WriteString("\n")
	builder.WriteString(q.Explain())
	if where != nil {
		builder.WriteString("WHERE ")
		builder.WriteString(where.String())
		builder.WriteString("\n")
	}
	return builder.String()
}

func (q *Query) alias(base string) string {
	n := q.aliases[base]
	q.aliases[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, n+1)
}

var (
	_ criteria.Query = (*Query)(nil)
	_ criteria.Join  = (*From)(nil)
)

// From is the query root or a join. The root has no parent.
type From struct {
	query  *Query
	parent *From

	entity    string
	alias     string
	attribute string
	joinType  criteria.JoinType
	fetched   bool

	joins []criteria.Join
}

func (f *From) String() string {
	return f.alias
}

func (f *From) Entity() string {
	return f.entity
}

func (f *From) Alias() string {
	return f.alias
}

func (f *From) Parent() *From {
	return f.parent
}

func (f *From) Attribute() string {
	return f.attribute
}

func (f *From) JoinType() criteria.JoinType {
	return f.joinType
}

func (f *From) Fetched() bool {
	return f.fetched
}

func (f *From) Joins() []criteria.Join {
	return append([]criteria.Join(nil), f.joins...)
}

// Get resolves an attribute of the entity. Joins over embeddable element
// types have no entity mapping and accept any attribute.
func (f *From) Get(attribute string) (criteria.Path, error) {
	if f.query.descriptor.HasEntity(f.entity) {
		if _, ok := f.query.descriptor.Field(f.entity, attribute); !ok {
			return nil, errors.Wrapf(ErrUnknownAttribute, "%s.%s", f.entity, attribute)
		}
	}

	return &Attribute{parent: f, name: attribute}, nil
}

func (f *From) Join(attribute string, joinType criteria.JoinType) (criteria.Join, error) {
	return f.join(attribute, joinType, false)
}

func (f *From) Fetch(attribute string, joinType criteria.JoinType) (criteria.Join, error) {
	return f.join(attribute, joinType, true)
}

func (f *From) join(attribute string, joinType criteria.JoinType, fetch bool) (criteria.Join, error) {
	field, ok := f.query.descriptor.Field(f.entity, attribute)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAttribute, "join %s.%s", f.entity, attribute)
	}
	if !field.Kind.IsAssociation() && field.Kind != schema.ElementCollection {
		return nil, errors.Wrapf(ErrNotJoinable, "join %s.%s of kind %s", f.entity, attribute, field.Kind)
	}

	join := &From{
		query:     f.query,
		parent:    f,
		entity:    field.Target,
		alias:     f.query.alias(f.alias + "_" + attribute),
		attribute: attribute,
		joinType:  joinType,
		fetched:   fetch,
	}
	f.joins = append(f.joins, join)
	f.query.joins = append(f.query.joins, join)

	return join, nil
}

func (f *From) explain(builder *strings.Builder, depth int) {
	for _, j := range f.joins {
		join := j.(*From)
		builder.WriteString(strings.Repeat("  ", depth))
		builder.WriteString(join.joinType.String())
		builder.WriteString(" JOIN ")
		if join.fetched {
			builder.WriteString("FETCH ")
		}
		builder.WriteString(fmt.Sprintf("%s.%s AS %s\n", f.alias, join.attribute, join.alias))
		join.explain(builder, depth+1)
	}
}

// Attribute is a plain attribute reference.
type Attribute struct {
	parent *From
	name   string
}

func (a *Attribute) String() string {
	return a.parent.alias + "." + a.name
}

func (a *Attribute) Name() string {
	return a.name
}

func (a *Attribute) Parent() *From {
	return a.parent
}
