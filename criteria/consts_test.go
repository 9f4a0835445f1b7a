package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJoinType(t *testing.T) {
	tests := []struct {
		in   string
		want JoinType
		ok   bool
	}{
		{"inner", InnerJoin, true},
		{"LEFT", LeftJoin, true},
		{"Right", RightJoin, true},
		{"outer", InnerJoin, false},
	}

	for _, tt := range tests {
		got, ok := ParseJoinType(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestJoinTypeString(t *testing.T) {
	assert.Equal(t, "INNER", InnerJoin.String())
	assert.Equal(t, "LEFT", LeftJoin.String())
	assert.Equal(t, "UNKNOWN", JoinType(9).String())
}
