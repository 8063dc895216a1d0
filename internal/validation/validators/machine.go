package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/pkg/enigma"
)

func ValidateRotor(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// leave empty values to the "required" tag
	if value == "" {
		return true
	}

	_, err := enigma.ParseRotorType(value)
	return err == nil
}

func ValidateReflector(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if value == "" {
		return true
	}

	_, err := enigma.ParseReflectorType(value)
	return err == nil
}
