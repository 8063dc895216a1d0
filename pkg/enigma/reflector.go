package enigma

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownReflector = errors.New("unknown reflector type")

type ReflectorType int

const (
	ReflectorB ReflectorType = iota
	ReflectorC
)

var reflectorSpecs = [...]struct {
	name   string
	wiring string
}{
	ReflectorB: {"B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	ReflectorC: {"C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

func ReflectorTypes() []ReflectorType {
	return []ReflectorType{ReflectorB, ReflectorC}
}

func ParseReflectorType(name string) (ReflectorType, error) {
	for i, spec := range reflectorSpecs {
		if strings.EqualFold(spec.name, strings.TrimSpace(name)) {
			return ReflectorType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
}

func (t ReflectorType) Valid() bool {
	return t == ReflectorB || t == ReflectorC
}

func (t ReflectorType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ReflectorType(%d)", int(t))
	}
	return reflectorSpecs[t].name
}

// Reflector sends the signal back through the rotors.
// The historical tables are self-inverse, so no backward mapping is kept.
type Reflector struct {
	typ    ReflectorType
	wiring Wiring
}

func NewReflector(t ReflectorType) (Reflector, error) {
	if !t.Valid() {
		return Reflector{}, fmt.Errorf("%w: %d", ErrUnknownReflector, int(t))
	}
	return Reflector{
		typ:    t,
		wiring: MustWiring(reflectorSpecs[t].wiring),
	}, nil
}

func (r Reflector) Type() ReflectorType {
	return r.typ
}

func (r Reflector) Wiring() Wiring {
	return r.wiring
}

func (r Reflector) Map(i int) int {
	return r.wiring.Forward(i)
}
