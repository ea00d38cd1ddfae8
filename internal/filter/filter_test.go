package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code int
		want Type
		name string
	}{
		{-2, OES, "OES"},
		{0, Normal, "Normal"},
		{1, XProII, "X-Pro II"},
		{2, LoFi, "Lo-Fi"},
		{14, S1977, "1977"},
		{112, Clarendon, "Clarendon"},
		{643, SubtleColor, "SubtleColor"},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.code)
		assert.True(t, ok, "Lookup(%d)", tt.code)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.name, got.String())
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, code := range []int{4, 110, 644, 1 << 20, -3} {
		_, ok := Lookup(code)
		assert.False(t, ok, "Lookup(%d)", code)
	}
	assert.Equal(t, "Type(4)", Type(4).String())
}
