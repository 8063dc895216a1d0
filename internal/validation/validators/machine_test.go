package validators_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/validation/validators"
)

func TestValidateRotor(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("rotor", validators.ValidateRotor))

	tests := []struct {
		value string
		want  bool
	}{
		{"I", true},
		{"II", true},
		{"iii", true},
		{"IV", true},
		{"V", true},
		{"", true},
		{"VI", false},
		{"1", false},
		{"B", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validate.Var(tt.value, "rotor")
			assert.Equal(t, tt.want, err == nil)
		})
	}
}

func TestValidateReflector(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("reflector", validators.ValidateReflector))

	tests := []struct {
		value string
		want  bool
	}{
		{"B", true},
		{"c", true},
		{"", true},
		{"A", false},
		{"I", false},
		{"BC", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validate.Var(tt.value, "reflector")
			assert.Equal(t, tt.want, err == nil)
		})
	}
}
