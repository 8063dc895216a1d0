package listcomponents

import (
	"context"

	"github.com/sergeii/enigma/pkg/enigma"
)

type Rotor struct {
	Name   string
	Wiring string
	Notch  string
}

type Reflector struct {
	Name   string
	Wiring string
}

type Components struct {
	Rotors     []Rotor
	Reflectors []Reflector
}

type UseCase struct{}

func New() UseCase {
	return UseCase{}
}

func (uc UseCase) Execute(ctx context.Context) (Components, error) {
	if err := ctx.Err(); err != nil {
		return Components{}, err
	}

	rotorTypes := enigma.RotorTypes()
	reflectorTypes := enigma.ReflectorTypes()
	result := Components{
		Rotors:     make([]Rotor, 0, len(rotorTypes)),
		Reflectors: make([]Reflector, 0, len(reflectorTypes)),
	}

	for _, typ := range rotorTypes {
		rotor, err := enigma.NewRotor(typ)
		if err != nil {
			return Components{}, err
		}
		result.Rotors = append(result.Rotors, Rotor{
			Name:   typ.String(),
			Wiring: rotor.Wiring().String(),
			Notch:  string(enigma.Letter(rotor.Notch())),
		})
	}

	for _, typ := range reflectorTypes {
		reflector, err := enigma.NewReflector(typ)
		if err != nil {
			return Components{}, err
		}
		result.Reflectors = append(result.Reflectors, Reflector{
			Name:   typ.String(),
			Wiring: reflector.Wiring().String(),
		})
	}

	return result, nil
}
