package enigma

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRotor = errors.New("unknown rotor type")

type RotorType int

const (
	RotorI RotorType = iota
	RotorII
	RotorIII
	RotorIV
	RotorV
)

type rotorSpec struct {
	name   string
	wiring string
	notch  rune
}

var rotorSpecs = [...]rotorSpec{
	RotorI:   {"I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q'},
	RotorII:  {"II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E'},
	RotorIII: {"III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V'},
	RotorIV:  {"IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J'},
	RotorV:   {"V", "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z'},
}

// RotorTypes lists all supported rotors in their historical order.
func RotorTypes() []RotorType {
	return []RotorType{RotorI, RotorII, RotorIII, RotorIV, RotorV}
}

// ParseRotorType accepts a roman numeral name such as "III", in any case.
func ParseRotorType(name string) (RotorType, error) {
	for i, spec := range rotorSpecs {
		if strings.EqualFold(spec.name, strings.TrimSpace(name)) {
			return RotorType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRotor, name)
}

func (t RotorType) Valid() bool {
	return t >= RotorI && t <= RotorV
}

func (t RotorType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("RotorType(%d)", int(t))
	}
	return rotorSpecs[t].name
}

// Rotor is a wired disc with a ring setting, a rotational position
// and a single turnover notch.
type Rotor struct {
	typ      RotorType
	wiring   Wiring
	notch    int
	position int
	ring     int
}

// NewRotor returns a rotor of the given historical type at position 0 with ring setting 0.
func NewRotor(t RotorType) (Rotor, error) {
	if !t.Valid() {
		return Rotor{}, fmt.Errorf("%w: %d", ErrUnknownRotor, int(t))
	}
	spec := rotorSpecs[t]
	notch, _ := Symbol(spec.notch)
	return Rotor{
		typ:    t,
		wiring: MustWiring(spec.wiring),
		notch:  notch,
	}, nil
}

func (r *Rotor) SetPosition(p int) {
	r.position = mod26(p)
}

func (r *Rotor) SetRing(ring int) {
	r.ring = mod26(ring)
}

func (r Rotor) Type() RotorType {
	return r.typ
}

func (r Rotor) Position() int {
	return r.position
}

func (r Rotor) Ring() int {
	return r.ring
}

func (r Rotor) Notch() int {
	return r.notch
}

func (r Rotor) Wiring() Wiring {
	return r.wiring
}

// AtNotch reports whether the rotor sits at its turnover position.
// The ring setting shifts the notch along with the letter ring.
func (r Rotor) AtNotch() bool {
	return mod26(r.position-r.ring) == r.notch
}

func (r *Rotor) Step() {
	r.position = mod26(r.position + 1)
}

// Forward passes a signal from the entry side (right) towards the reflector.
func (r Rotor) Forward(i int) int {
	offset := r.position - r.ring
	return mod26(r.wiring.Forward(mod26(i+offset)) - offset)
}

// Backward passes a signal returning from the reflector.
func (r Rotor) Backward(i int) int {
	offset := r.position - r.ring
	return mod26(r.wiring.Backward(mod26(i+offset)) - offset)
}
