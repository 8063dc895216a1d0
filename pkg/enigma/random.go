package enigma

import (
	"strings"
)

const randomPlugPairs = 6

// RandomSource is the subset of *math/rand/v2.Rand used to draw random settings.
type RandomSource interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// RandomSettings draws a uniformly random configuration: three distinct rotors,
// independent rings and positions, one of the reflectors,
// and six disjoint plugboard pairs taken from a shuffled alphabet.
func RandomSettings(src RandomSource) Settings {
	var s Settings

	rotors := RotorTypes()
	src.Shuffle(len(rotors), func(i, j int) {
		rotors[i], rotors[j] = rotors[j], rotors[i]
	})
	copy(s.Rotors[:], rotors)

	for i := range s.Rings {
		s.Rings[i] = src.IntN(alphabetSize)
	}
	for i := range s.Positions {
		s.Positions[i] = src.IntN(alphabetSize)
	}

	reflectors := ReflectorTypes()
	s.Reflector = reflectors[src.IntN(len(reflectors))]

	letters := []rune(Alphabet)
	src.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	pairs := make([]string, 0, randomPlugPairs)
	for i := 0; i+1 < len(letters) && len(pairs) < randomPlugPairs; i += 2 {
		pairs = append(pairs, string(letters[i:i+2]))
	}
	s.Plugboard = strings.Join(pairs, " ")

	return s
}
