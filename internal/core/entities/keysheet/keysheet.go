package keysheet

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/pkg/enigma"
)

// Keysheet is the textual form of a machine configuration,
// slots ordered left, middle, right. Rings and positions are zero based.
type Keysheet struct {
	Reflector string    `validate:"required,reflector"`
	Rotors    [3]string `validate:"dive,required,rotor"`
	Rings     [3]int
	Positions [3]int
	Plugboard string
}

var Blank Keysheet // nolint: gochecknoglobals

func New(s enigma.Settings) Keysheet {
	ks := Keysheet{
		Reflector: s.Reflector.String(),
		Rings:     s.Rings,
		Positions: s.Positions,
		Plugboard: s.Plugboard,
	}
	for i, typ := range s.Rotors {
		ks.Rotors[i] = typ.String()
	}
	return ks
}

func Default() Keysheet {
	return New(enigma.DefaultSettings())
}

func (ks Keysheet) Validate(validate *validator.Validate) error {
	return validate.Struct(ks)
}

func (ks Keysheet) Settings() (enigma.Settings, error) {
	reflector, err := enigma.ParseReflectorType(ks.Reflector)
	if err != nil {
		return enigma.Settings{}, err
	}
	settings := enigma.Settings{
		Reflector: reflector,
		Rings:     ks.Rings,
		Positions: ks.Positions,
		Plugboard: ks.Plugboard,
	}
	for i, name := range ks.Rotors {
		if settings.Rotors[i], err = enigma.ParseRotorType(name); err != nil {
			return enigma.Settings{}, err
		}
	}
	return settings, nil
}

// String renders the key sheet in the compact "B I-II-III 01-02-03 04-05-06 AB CD" form.
func (ks Keysheet) String() string {
	parts := []string{
		ks.Reflector,
		strings.Join(ks.Rotors[:], "-"),
		fmt.Sprintf("%02d-%02d-%02d", ks.Rings[0], ks.Rings[1], ks.Rings[2]),
		fmt.Sprintf("%02d-%02d-%02d", ks.Positions[0], ks.Positions[1], ks.Positions[2]),
	}
	if plugs := strings.TrimSpace(ks.Plugboard); plugs != "" {
		parts = append(parts, plugs)
	}
	return strings.Join(parts, " ")
}
