package enigma

const alphabetSize = 26

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func mod26(v int) int {
	v %= alphabetSize
	if v < 0 {
		v += alphabetSize
	}
	return v
}

// Symbol converts an ASCII letter of either case to its index, A=0 through Z=25.
// The second return value is false for anything that is not a Latin letter.
func Symbol(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	default:
		return 0, false
	}
}

// Letter converts an index back to an upper case letter. The index is taken mod 26.
func Letter(i int) rune {
	return rune('A' + mod26(i))
}
