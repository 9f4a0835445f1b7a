package model

import (
	"sort"
	"testing"
	"time"

	"github.com/mangohow/specification/criteria/memory"
	"github.com/mangohow/specification/nullable"
	"github.com/mangohow/specification/schema"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedFields(entities []schema.Entity) []schema.Entity {
	for _, entity := range entities {
		sort.Slice(entity.Fields, func(i, j int) bool {
			return entity.Fields[i].Name < entity.Fields[j].Name
		})
	}
	return entities
}

func TestRegistryMatchesGeneratedSchema(t *testing.T) {
	r := schema.NewRegistry()
	require.NoError(t, r.Register(&User{}))

	reflected, err := r.Descriptor()
	require.NoError(t, err)

	assert.Equal(t, sortedFields(Schema.Entities()), sortedFields(reflected.Entities()))
}

func TestUserFilterSpecification(t *testing.T) {
	filter := UserFilter{
		Username:    nullable.From("ann"),
		Bio:         "gopher",
		Roles:       []string{"admin", "editor"},
		CreatedFrom: nullable.From(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		PostKeyword: "generics",
	}

	spec, err := filter.Specification()
	require.NoError(t, err)
	require.NotNil(t, spec)

	query, err := memory.NewQuery(Schema, "User")
	require.NoError(t, err)
	predicate, err := spec.ToPredicate(query.Root(), query, memory.NewBuilder())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "user_filter", []byte(query.Render(predicate)))
}

func TestEmptyUserFilter(t *testing.T) {
	spec, err := (&UserFilter{}).Specification()
	require.NoError(t, err)
	assert.Nil(t, spec)
}
