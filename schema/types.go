package schema

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

type FieldKind int

const (
	Attribute FieldKind = iota
	OneToOne
	ManyToOne
	OneToMany
	ManyToMany
	ElementCollection
)

var fieldKindNames = map[FieldKind]string{
	Attribute:         "attribute",
	OneToOne:          "one-to-one",
	ManyToOne:         "many-to-one",
	OneToMany:         "one-to-many",
	ManyToMany:        "many-to-many",
	ElementCollection: "element-collection",
}

func (k FieldKind) String() string {
	if name, ok := fieldKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// IsAssociation reports whether the field references another entity.
func (k FieldKind) IsAssociation() bool {
	switch k {
	case OneToOne, ManyToOne, OneToMany, ManyToMany:
		return true
	default:
		return false
	}
}

func ParseFieldKind(s string) (FieldKind, bool) {
	for kind, name := range fieldKindNames {
		if name == s {
			return kind, true
		}
	}
	return Attribute, false
}

func (k FieldKind) MarshalYAML() (interface{}, error) {
	if _, ok := fieldKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown field kind %d", int(k))
	}
	return k.String(), nil
}

func (k *FieldKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kind, ok := ParseFieldKind(s)
	if !ok {
		return fmt.Errorf("line %d: unknown field kind %q", value.Line, s)
	}
	*k = kind
	return nil
}

// Field is one declared field of an entity. Target names the referenced
// entity for associations, and the element type for element collections of
// embeddable structs.
type Field struct {
	Name   string    `yaml:"name"`
	Kind   FieldKind `yaml:"kind"`
	Target string    `yaml:"target,omitempty"`
}

type Entity struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Introspector answers how a field of an entity is mapped.
// Unknown entities and fields are neither associations nor element collections.
type Introspector interface {
	IsAssociation(entity, field string) bool
	IsElementCollection(entity, field string) bool
}

// EntityName is the entity name used for T: the name of its struct type.
func EntityName[T any]() string {
	return indirect(reflect.TypeOf((*T)(nil)).Elem()).Name()
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
