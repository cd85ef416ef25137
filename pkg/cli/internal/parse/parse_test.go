package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyValue(t *testing.T) {
	tests := []struct {
		in         string
		delims     []rune
		key, value string
		ok         bool
	}{
		{"a=b", nil, "a", "b", true},
		{"a=b=c", nil, "a", "b=c", true},
		{"a:b", []rune{':'}, "a", "b", true},
		{"a:b=c", []rune{'=', ':'}, "a", "b=c", true},
		{"plain", nil, "", "", false},
	}
	for _, tt := range tests {
		key, value, ok := KeyValue(tt.in, tt.delims...)
		assert.Equal(t, tt.key, key, tt.in)
		assert.Equal(t, tt.value, value, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestSplitTrim(t *testing.T) {
	assert.Nil(t, SplitTrim("", "|"))
	assert.Equal(t, []string{"a", "b"}, SplitTrim(" a |  | b ", "|"))
}
