package schema

import (
	"reflect"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx/reflectx"
	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/internal/utils/stringutils"
	"golang.org/x/sync/singleflight"
)

// DefaultTagName is the struct tag read by the registry. The first tag value
// names the attribute, the options carry the mapping, e.g.
//
//	type User struct {
//		Id      int64    `db:"id,pk"`
//		Profile *Profile `db:"profile,one-to-one"`
//		Posts   []*Post  `db:"posts,one-to-many"`
//		Tags    []string `db:"tags,element-collection"`
//	}
//
// Untagged fields are named by their lower camel case field name.
const DefaultTagName = "db"

// Registry builds entity mappings from struct types at runtime.
// It is safe for concurrent use.
type Registry struct {
	mapper *reflectx.Mapper

	mu       sync.RWMutex
	entities map[string]Entity
	order    []string
	types    map[reflect.Type]string

	flightGroup singleflight.Group
}

func NewRegistry() *Registry {
	return NewRegistryWithTag(DefaultTagName)
}

func NewRegistryWithTag(tagName string) *Registry {
	return &Registry{
		mapper:   reflectx.NewMapperFunc(tagName, stringutils.LowerFirst),
		entities: make(map[string]Entity),
		types:    make(map[reflect.Type]string),
	}
}

// Register maps the struct types of models and, transitively, every entity
// reachable through their associations.
func (r *Registry) Register(models ...any) error {
	for _, model := range models {
		if model == nil {
			return ErrNotStruct
		}
		t := indirect(reflect.TypeOf(model))
		if t.Kind() != reflect.Struct {
			return errors.Wrapf(ErrNotStruct, "register %s", t)
		}
		if err := r.registerType(t); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) registered(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[t]
	return ok
}

// registerType stores the entity before visiting its targets, so cyclic
// associations terminate and never wait on their own flight.
func (r *Registry) registerType(t reflect.Type) error {
	if r.registered(t) {
		return nil
	}

	_, err, _ := r.flightGroup.Do(t.PkgPath()+"."+t.Name(), func() (any, error) {
		if r.registered(t) {
			return nil, nil
		}

		entity, targets := r.reflectEntity(t)

		r.mu.Lock()
		if other, ok := r.entities[entity.Name]; ok && r.typeOf(entity.Name) != t {
			r.mu.Unlock()
			return nil, errors.Wrapf(ErrDuplicateEntity, "%s is declared by %s and %s", other.Name, r.typeOf(entity.Name), t)
		}
		r.types[t] = entity.Name
		r.entities[entity.Name] = entity
		r.order = append(r.order, entity.Name)
		r.mu.Unlock()

		for _, target := range targets {
			if err := r.registerType(target); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})

	return err
}

// typeOf must be called with r.mu held.
func (r *Registry) typeOf(entity string) reflect.Type {
	for t, name := range r.types {
		if name == entity {
			return t
		}
	}
	return nil
}

func (r *Registry) reflectEntity(t reflect.Type) (Entity, []reflect.Type) {
	var (
		entity  = Entity{Name: t.Name()}
		targets []reflect.Type
	)

	structMap := r.mapper.TypeMap(t)
	for _, fi := range structMap.Index {
		// nested struct fields and the embedded struct itself are not
		// attributes of this entity, promoted fields are
		if fi == nil || fi.Embedded || strings.Contains(fi.Path, ".") {
			continue
		}

		field := Field{Name: fi.Name, Kind: kindOf(fi.Options)}
		if field.Kind != Attribute {
			if target := elemStruct(fi.Field.Type); target != nil {
				field.Target = target.Name()
				if field.Kind.IsAssociation() {
					targets = append(targets, target)
				}
			}
		}
		entity.Fields = append(entity.Fields, field)
	}

	return entity, targets
}

func kindOf(options map[string]string) FieldKind {
	for opt := range options {
		if kind, ok := ParseFieldKind(opt); ok && kind != Attribute {
			return kind
		}
	}
	return Attribute
}

// elemStruct unwraps pointers, slices and arrays down to a struct type.
func elemStruct(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		case reflect.Struct:
			return t
		default:
			return nil
		}
	}
}

func (r *Registry) field(entity, field string) (Field, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[entity]
	if !ok {
		return Field{}, false
	}
	for _, f := range e.Fields {
		if f.Name == field {
			return f, true
		}
	}
	return Field{}, false
}

func (r *Registry) IsAssociation(entity, field string) bool {
	f, ok := r.field(entity, field)
	return ok && f.Kind.IsAssociation()
}

func (r *Registry) IsElementCollection(entity, field string) bool {
	f, ok := r.field(entity, field)
	return ok && f.Kind == ElementCollection
}

// Descriptor snapshots the registered entities.
func (r *Registry) Descriptor() (*Descriptor, error) {
	r.mu.RLock()
	entities := make([]Entity, 0, len(r.order))
	for _, name := range r.order {
		entities = append(entities, r.entities[name])
	}
	r.mu.RUnlock()

	return New(entities...)
}
