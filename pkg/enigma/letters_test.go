package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/enigma/pkg/enigma"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		r      rune
		want   int
		wantOK bool
	}{
		{'A', 0, true},
		{'a', 0, true},
		{'Z', 25, true},
		{'z', 25, true},
		{'M', 12, true},
		{'@', 0, false},
		{'[', 0, false},
		{'1', 0, false},
		{' ', 0, false},
		{'é', 0, false},
		{'Ж', 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got, ok := enigma.Symbol(tt.r)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLetter(t *testing.T) {
	assert.Equal(t, 'A', enigma.Letter(0))
	assert.Equal(t, 'Z', enigma.Letter(25))
	assert.Equal(t, 'A', enigma.Letter(26))
	assert.Equal(t, 'Z', enigma.Letter(-1))
	assert.Equal(t, 'C', enigma.Letter(-52+2))
}
