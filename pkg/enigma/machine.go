package enigma

import (
	"strings"
)

// Machine is a three rotor Enigma. Slots are fixed: left, middle and right,
// the right rotor being the fast one next to the entry wheel.
type Machine struct {
	left      Rotor
	middle    Rotor
	right     Rotor
	reflector Reflector
	plugboard Plugboard
}

func NewMachine(left, middle, right Rotor, reflector Reflector, plugboard Plugboard) *Machine {
	return &Machine{
		left:      left,
		middle:    middle,
		right:     right,
		reflector: reflector,
		plugboard: plugboard,
	}
}

func (m *Machine) SetRotors(left, middle, right Rotor) {
	m.left, m.middle, m.right = left, middle, right
}

func (m *Machine) SetReflector(r Reflector) {
	m.reflector = r
}

func (m *Machine) SetPlugboard(p Plugboard) {
	m.plugboard = p
}

func (m *Machine) Plugboard() Plugboard {
	return m.plugboard
}

// SetPositions sets the window letters of the left, middle and right rotors.
func (m *Machine) SetPositions(left, middle, right int) {
	m.left.SetPosition(left)
	m.middle.SetPosition(middle)
	m.right.SetPosition(right)
}

// Positions returns the left, middle and right rotor positions.
func (m *Machine) Positions() [3]int {
	return [3]int{m.left.Position(), m.middle.Position(), m.right.Position()}
}

// step advances the rotors before a letter is enciphered.
// Both notches are read before anything moves: a middle rotor sitting at its notch
// steps itself along with the left rotor, which is the double-stepping anomaly.
func (m *Machine) step() {
	rightAtNotch := m.right.AtNotch()
	middleAtNotch := m.middle.AtNotch()
	if middleAtNotch || rightAtNotch {
		m.middle.Step()
	}
	if middleAtNotch {
		m.left.Step()
	}
	m.right.Step()
}

func (m *Machine) path(x int) int {
	x = m.plugboard.Map(x)
	x = m.right.Forward(x)
	x = m.middle.Forward(x)
	x = m.left.Forward(x)
	x = m.reflector.Map(x)
	x = m.left.Backward(x)
	x = m.middle.Backward(x)
	x = m.right.Backward(x)
	return m.plugboard.Map(x)
}

// EncryptLetter advances the rotors and enciphers a single letter of either case.
// The result is always upper case. Anything else is returned as is and the rotors stay put.
func (m *Machine) EncryptLetter(r rune) rune {
	x, ok := Symbol(r)
	if !ok {
		return r
	}
	m.step()
	return Letter(m.path(x))
}

// Encrypt enciphers every letter of text and keeps all other characters in place.
// The rotors advance once per letter, so decrypting requires resetting
// the positions to the values they had before the call.
func (m *Machine) Encrypt(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(m.EncryptLetter(r))
	}
	return b.String()
}
