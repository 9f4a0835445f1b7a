package schema

import (
	"sort"

	"github.com/mangohow/specification/internal/errors"
)

var (
	ErrDuplicateEntity = errors.New("duplicate entity")
	ErrDuplicateField  = errors.New("duplicate field")
	ErrUnknownTarget   = errors.New("unknown association target")
	ErrInvalidEntity   = errors.New("invalid entity")
	ErrNotStruct       = errors.New("model must be a struct or a pointer to a struct")
)

// Descriptor is a static, read-only mapping of entities and their fields.
// It is safe for concurrent use.
type Descriptor struct {
	entities map[string]Entity
	fields   map[string]map[string]Field
}

// New validates the entities and builds a descriptor. Association targets
// must name one of the given entities.
func New(entities ...Entity) (*Descriptor, error) {
	d := &Descriptor{
		entities: make(map[string]Entity, len(entities)),
		fields:   make(map[string]map[string]Field, len(entities)),
	}

	for _, entity := range entities {
		if entity.Name == "" {
			return nil, errors.Wrapf(ErrInvalidEntity, "entity without name")
		}
		if _, ok := d.entities[entity.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateEntity, "entity %s", entity.Name)
		}

		fields := make(map[string]Field, len(entity.Fields))
		for _, field := range entity.Fields {
			if field.Name == "" {
				return nil, errors.Wrapf(ErrInvalidEntity, "entity %s has a field without name", entity.Name)
			}
			if _, ok := fields[field.Name]; ok {
				return nil, errors.Wrapf(ErrDuplicateField, "field %s.%s", entity.Name, field.Name)
			}
			if field.Kind.IsAssociation() && field.Target == "" {
				return nil, errors.Wrapf(ErrUnknownTarget, "association %s.%s has no target", entity.Name, field.Name)
			}
			fields[field.Name] = field
		}

		copied := Entity{Name: entity.Name, Fields: append([]Field(nil), entity.Fields...)}
		d.entities[entity.Name] = copied
		d.fields[entity.Name] = fields
	}

	for _, entity := range d.entities {
		for _, field := range entity.Fields {
			if !field.Kind.IsAssociation() {
				continue
			}
			if _, ok := d.entities[field.Target]; !ok {
				return nil, errors.Wrapf(ErrUnknownTarget, "association %s.%s targets %s", entity.Name, field.Name, field.Target)
			}
		}
	}

	return d, nil
}

// MustNew is like New but panics on invalid input. Used by generated code.
func MustNew(entities ...Entity) *Descriptor {
	d, err := New(entities...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Descriptor) Entity(name string) (Entity, bool) {
	entity, ok := d.entities[name]
	if !ok {
		return Entity{}, false
	}
	entity.Fields = append([]Field(nil), entity.Fields...)
	return entity, true
}

func (d *Descriptor) HasEntity(name string) bool {
	_, ok := d.entities[name]
	return ok
}

func (d *Descriptor) Field(entity, field string) (Field, bool) {
	f, ok := d.fields[entity][field]
	return f, ok
}

// Entities returns all entities sorted by name.
func (d *Descriptor) Entities() []Entity {
	names := make([]string, 0, len(d.entities))
	for name := range d.entities {
		names = append(names, name)
	}
	sort.Strings(names)

	res := make([]Entity, 0, len(names))
	for _, name := range names {
		entity, _ := d.Entity(name)
		res = append(res, entity)
	}
	return res
}

func (d *Descriptor) IsAssociation(entity, field string) bool {
	f, ok := d.Field(entity, field)
	return ok && f.Kind.IsAssociation()
}

func (d *Descriptor) IsElementCollection(entity, field string) bool {
	f, ok := d.Field(entity, field)
	return ok && f.Kind == ElementCollection
}

// Target returns the entity an association points to, or the element type
// of an element collection.
func (d *Descriptor) Target(entity, field string) string {
	return d.fields[entity][field].Target
}
