package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/pkg/enigma"
)

func TestNewWiring_OK(t *testing.T) {
	w, err := enigma.NewWiring("EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	require.NoError(t, err)

	assert.Equal(t, 4, w.Forward(0))  // A -> E
	assert.Equal(t, 9, w.Forward(25)) // Z -> J
	assert.Equal(t, 0, w.Backward(4))
	assert.Equal(t, 25, w.Backward(9))
	for i := range 26 {
		assert.Equal(t, i, w.Backward(w.Forward(i)))
		assert.Equal(t, i, w.Forward(w.Backward(i)))
	}
	assert.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", w.String())
}

func TestNewWiring_LowerCase(t *testing.T) {
	w, err := enigma.NewWiring("ekmflgdqvzntowyhxuspaibrcj")
	require.NoError(t, err)
	assert.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", w.String())
}

func TestNewWiring_Invalid(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"too short", "EKMFLGDQVZNTOWYHXUSPAIBRC"},
		{"too long", "EKMFLGDQVZNTOWYHXUSPAIBRCJA"},
		{"repeated letter", "EEMFLGDQVZNTOWYHXUSPAIBRCJ"},
		{"not a letter", "EKMFLGDQVZNTOWYHXUSPAIBRC1"},
		{"multibyte rune", "EKMFLGDQVZNTOWYHXUSPAIBRé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enigma.NewWiring(tt.s)
			assert.ErrorIs(t, err, enigma.ErrInvalidWiring)
		})
	}
}

func TestMustWiring_Panics(t *testing.T) {
	assert.Panics(t, func() {
		enigma.MustWiring("ABC")
	})
	assert.NotPanics(t, func() {
		enigma.MustWiring(enigma.Alphabet)
	})
}
