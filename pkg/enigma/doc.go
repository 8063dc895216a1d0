// Package enigma simulates the three-rotor Enigma M3 cipher machine.
//
// A Machine is composed of a Plugboard, three Rotor values (left, middle, right)
// and a Reflector. Every enciphered letter first advances the rotors, reproducing
// the historical double-stepping of the middle rotor, then travels through
// plugboard, right, middle and left rotors, the reflector, and back again.
//
// Machines are plain values with no internal locking.
// A single Machine must not be used from several goroutines at once.
package enigma
