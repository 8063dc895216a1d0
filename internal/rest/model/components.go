package model

import (
	"github.com/gosimple/slug"

	"github.com/sergeii/enigma/internal/core/usecases/listcomponents"
)

type Rotor struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Wiring string `json:"wiring"`
	Notch  string `json:"notch"`
}

type Reflector struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Wiring string `json:"wiring"`
}

type Components struct {
	Rotors     []Rotor     `json:"rotors"`
	Reflectors []Reflector `json:"reflectors"`
}

func NewComponentsFromDomain(c listcomponents.Components) Components {
	result := Components{
		Rotors:     make([]Rotor, 0, len(c.Rotors)),
		Reflectors: make([]Reflector, 0, len(c.Reflectors)),
	}
	for _, r := range c.Rotors {
		result.Rotors = append(result.Rotors, Rotor{
			Name:   r.Name,
			Slug:   slug.Make("rotor " + r.Name),
			Wiring: r.Wiring,
			Notch:  r.Notch,
		})
	}
	for _, r := range c.Reflectors {
		result.Reflectors = append(result.Reflectors, Reflector{
			Name:   r.Name,
			Slug:   slug.Make("reflector " + r.Name),
			Wiring: r.Wiring,
		})
	}
	return result
}
