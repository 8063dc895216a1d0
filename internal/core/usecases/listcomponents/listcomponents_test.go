package listcomponents_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/usecases/listcomponents"
)

func TestListComponentsUseCase_OK(t *testing.T) {
	uc := listcomponents.New()
	got, err := uc.Execute(context.TODO())
	require.NoError(t, err)

	require.Len(t, got.Rotors, 5)
	assert.Equal(t, listcomponents.Rotor{
		Name:   "I",
		Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
		Notch:  "Q",
	}, got.Rotors[0])
	assert.Equal(t, "V", got.Rotors[4].Name)
	assert.Equal(t, "Z", got.Rotors[4].Notch)

	require.Len(t, got.Reflectors, 2)
	assert.Equal(t, listcomponents.Reflector{
		Name:   "B",
		Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	}, got.Reflectors[0])
	assert.Equal(t, "C", got.Reflectors[1].Name)
}
