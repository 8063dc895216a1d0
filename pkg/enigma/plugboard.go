package enigma

import (
	"unicode"
)

// Plugboard swaps pairs of letters on the way into and out of the rotors.
// The zero value is an empty board that maps every letter to itself.
type Plugboard struct {
	// partner index plus one, zero for unplugged letters
	plugs [alphabetSize]int
}

// NewPlugboard returns a plugboard configured from pairs, see Configure.
func NewPlugboard(pairs string) Plugboard {
	p := Plugboard{}
	p.Configure(pairs)
	return p
}

func (p *Plugboard) Reset() {
	p.plugs = [alphabetSize]int{}
}

// Configure replaces the whole board with the pairs listed in text, e.g. "AB CD EF".
// Letters are collected two at a time; anything that is not a letter is skipped.
// A pair of the same letter is discarded, and so is any pair mentioning a letter
// that an earlier pair already claimed. A trailing unpaired letter has no effect.
func (p *Plugboard) Configure(text string) {
	p.Reset()
	pending := -1
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		i, ok := Symbol(r)
		if !ok {
			continue
		}
		if pending < 0 {
			pending = i
			continue
		}
		a, b := pending, i
		pending = -1
		if a == b || p.plugs[a] != 0 || p.plugs[b] != 0 {
			continue
		}
		p.plugs[a], p.plugs[b] = b+1, a+1
	}
}

func (p Plugboard) Map(i int) int {
	i = mod26(i)
	if partner := p.plugs[i]; partner != 0 {
		return partner - 1
	}
	return i
}

// Pairs lists the swapped letters as two letter strings in alphabetical order.
func (p Plugboard) Pairs() []string {
	pairs := make([]string, 0, alphabetSize/2)
	for i := range alphabetSize {
		if o := p.Map(i); o > i {
			pairs = append(pairs, string([]rune{Letter(i), Letter(o)}))
		}
	}
	return pairs
}
