package stringutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUpperLetter(t *testing.T) {
	assert.True(t, IsUpperLetter("User"))
	assert.False(t, IsUpperLetter("user"))
	assert.False(t, IsUpperLetter(""))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "userName", LowerFirst("UserName"))
	assert.Equal(t, "", LowerFirst(""))
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "OneToMany", ToPascalCase("one-to-many", "-"))
	assert.Equal(t, "CreatedAt", ToPascalCase("created_at", "_"))
	assert.Equal(t, "Attribute", ToPascalCase("attribute", "-"))
}
