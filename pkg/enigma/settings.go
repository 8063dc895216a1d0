package enigma

// Settings is a complete machine configuration, slots ordered left, middle, right.
// Rings and positions are zero based (A=0) and normalised mod 26.
type Settings struct {
	Reflector ReflectorType
	Rotors    [3]RotorType
	Rings     [3]int
	Positions [3]int
	Plugboard string
}

// DefaultSettings is reflector B with rotors I, II and III, everything at A and no plugs.
func DefaultSettings() Settings {
	return Settings{
		Reflector: ReflectorB,
		Rotors:    [3]RotorType{RotorI, RotorII, RotorIII},
	}
}

// New assembles a machine from settings.
func New(s Settings) (*Machine, error) {
	var rotors [3]Rotor
	for i, typ := range s.Rotors {
		rotor, err := NewRotor(typ)
		if err != nil {
			return nil, err
		}
		rotor.SetRing(s.Rings[i])
		rotor.SetPosition(s.Positions[i])
		rotors[i] = rotor
	}
	reflector, err := NewReflector(s.Reflector)
	if err != nil {
		return nil, err
	}
	return NewMachine(rotors[0], rotors[1], rotors[2], reflector, NewPlugboard(s.Plugboard)), nil
}
