package enigma

import (
	"errors"
	"fmt"
)

var ErrInvalidWiring = errors.New("invalid wiring")

// Wiring is a fixed permutation of the alphabet along with its inverse.
type Wiring struct {
	fwd [alphabetSize]int
	rev [alphabetSize]int
}

// NewWiring builds a wiring from a 26 letter permutation string,
// where the letter at index i is the contact that input i is wired to.
func NewWiring(s string) (Wiring, error) {
	var w Wiring
	if len(s) != alphabetSize {
		return Wiring{}, fmt.Errorf("%w: expected %d letters, got %d", ErrInvalidWiring, alphabetSize, len(s))
	}
	var seen [alphabetSize]bool
	for i := range alphabetSize {
		o, ok := Symbol(rune(s[i]))
		if !ok {
			return Wiring{}, fmt.Errorf("%w: %q at %d is not a letter", ErrInvalidWiring, s[i], i)
		}
		if seen[o] {
			return Wiring{}, fmt.Errorf("%w: letter %c is wired twice", ErrInvalidWiring, Letter(o))
		}
		seen[o] = true
		w.fwd[i] = o
		w.rev[o] = i
	}
	return w, nil
}

// MustWiring is like NewWiring but panics on invalid input.
// It is meant for the historical tables which are known to be valid.
func MustWiring(s string) Wiring {
	w, err := NewWiring(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Wiring) Forward(i int) int {
	return w.fwd[mod26(i)]
}

func (w Wiring) Backward(i int) int {
	return w.rev[mod26(i)]
}

func (w Wiring) String() string {
	out := make([]rune, alphabetSize)
	for i, o := range w.fwd {
		out[i] = Letter(o)
	}
	return string(out)
}
