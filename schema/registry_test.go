package schema

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type baseEntity struct {
	Id int64 `db:"id,pk"`
}

type author struct {
	baseEntity
	Name     string    `db:"name"`
	Bio      *bio      `db:"bio,one-to-one"`
	Books    []*book   `db:"books,one-to-many"`
	Aliases  []string  `db:"aliases,element-collection"`
	Address  []address `db:"addresses,element-collection"`
	Created  time.Time `db:"created"`
	Nickname string
	ignored  string
}

type bio struct {
	Text   string  `db:"text"`
	Author *author `db:"author,one-to-one"`
}

type book struct {
	Title  string  `db:"title"`
	Author *author `db:"author,many-to-one"`
}

type address struct {
	City string `db:"city"`
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&author{}))

	assert.True(t, r.IsAssociation("author", "bio"))
	assert.True(t, r.IsAssociation("author", "books"))
	assert.True(t, r.IsElementCollection("author", "aliases"))
	assert.True(t, r.IsElementCollection("author", "addresses"))
	assert.False(t, r.IsAssociation("author", "name"))
	assert.False(t, r.IsAssociation("author", "missing"))

	// targets are registered transitively, cycles included
	assert.True(t, r.IsAssociation("book", "author"))
	assert.True(t, r.IsAssociation("bio", "author"))

	d, err := r.Descriptor()
	require.NoError(t, err)

	id, ok := d.Field("author", "id")
	require.True(t, ok, "promoted field of embedded struct")
	assert.Equal(t, Attribute, id.Kind)

	nickname, ok := d.Field("author", "nickname")
	require.True(t, ok, "untagged fields use lower camel case names")
	assert.Equal(t, Attribute, nickname.Kind)

	_, ok = d.Field("author", "ignored")
	assert.False(t, ok)

	books, _ := d.Field("author", "books")
	assert.Equal(t, Field{Name: "books", Kind: OneToMany, Target: "book"}, books)

	addresses, _ := d.Field("author", "addresses")
	assert.Equal(t, "address", addresses.Target)
	assert.False(t, d.HasEntity("address"), "embeddable element types are not entities")

	aliases, _ := d.Field("author", "aliases")
	assert.Empty(t, aliases.Target)
}

func TestRegistryRejectsNonStruct(t *testing.T) {
	r := NewRegistry()

	assert.ErrorIs(t, r.Register(42), ErrNotStruct)
	assert.ErrorIs(t, r.Register(nil), ErrNotStruct)
}

func TestRegistryConcurrentRegister(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.NoError(t, r.Register(author{}))
			} else {
				assert.NoError(t, r.Register(&book{}))
			}
		}(i)
	}
	wg.Wait()

	d, err := r.Descriptor()
	require.NoError(t, err)
	assert.Len(t, d.Entities(), 3)
}

func TestEntityName(t *testing.T) {
	assert.Equal(t, "author", EntityName[author]())
	assert.Equal(t, "book", EntityName[*book]())
}
