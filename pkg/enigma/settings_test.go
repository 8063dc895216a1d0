package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/pkg/enigma"
)

func TestDefaultSettings(t *testing.T) {
	s := enigma.DefaultSettings()
	assert.Equal(t, enigma.ReflectorB, s.Reflector)
	assert.Equal(t, [3]enigma.RotorType{enigma.RotorI, enigma.RotorII, enigma.RotorIII}, s.Rotors)
	assert.Equal(t, [3]int{}, s.Rings)
	assert.Equal(t, [3]int{}, s.Positions)
	assert.Empty(t, s.Plugboard)
}

func TestNew_AppliesSettings(t *testing.T) {
	m, err := enigma.New(enigma.Settings{
		Reflector: enigma.ReflectorC,
		Rotors:    [3]enigma.RotorType{enigma.RotorV, enigma.RotorV, enigma.RotorV},
		Positions: [3]int{1, 2, 28},
		Plugboard: "XY",
	})
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 2, 2}, m.Positions())
	assert.Equal(t, []string{"XY"}, m.Plugboard().Pairs())
}

func TestNew_UnknownParts(t *testing.T) {
	s := enigma.DefaultSettings()
	s.Rotors[1] = enigma.RotorType(9)
	_, err := enigma.New(s)
	assert.ErrorIs(t, err, enigma.ErrUnknownRotor)

	s = enigma.DefaultSettings()
	s.Reflector = enigma.ReflectorType(9)
	_, err = enigma.New(s)
	assert.ErrorIs(t, err, enigma.ErrUnknownReflector)
}
