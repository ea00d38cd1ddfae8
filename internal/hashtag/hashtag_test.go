package hashtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"#rust is #awesome", []string{"rust", "awesome"}},
		{"#我#我的", []string{"我", "我的"}},
		{"sunset #golden_hour, #nofilter!", []string{"golden_hour", "nofilter"}},
		{"#café #123", []string{"café", "123"}},
		{"no tags # here", nil},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extract(tt.in), tt.in)
	}
}
