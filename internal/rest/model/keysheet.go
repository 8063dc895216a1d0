package model

import (
	"strconv"

	"github.com/sergeii/enigma/internal/core/entities/keysheet"
	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
	"github.com/sergeii/enigma/internal/core/usecases/randomizekeysheet"
)

type Keysheet struct {
	Reflector string   `binding:"required"        example:"B"        json:"reflector"`
	Rotors    []string `binding:"required,len=3"  example:"I,II,III" json:"rotors"`
	Rings     []int    `binding:"omitempty,len=3" example:"0,0,0"    json:"rings"`
	Positions []int    `binding:"omitempty,len=3" example:"0,0,0"    json:"positions"`
	Plugboard string   `example:"AB CD EF"        json:"plugboard"`
}

func (m Keysheet) ToDomain() keysheet.Keysheet {
	ks := keysheet.Keysheet{
		Reflector: m.Reflector,
		Plugboard: m.Plugboard,
	}
	copy(ks.Rotors[:], m.Rotors)
	copy(ks.Rings[:], m.Rings)
	copy(ks.Positions[:], m.Positions)
	return ks
}

func NewKeysheetFromDomain(ks keysheet.Keysheet) Keysheet {
	return Keysheet{
		Reflector: ks.Reflector,
		Rotors:    ks.Rotors[:],
		Rings:     ks.Rings[:],
		Positions: ks.Positions[:],
		Plugboard: ks.Plugboard,
	}
}

type EncryptRequest struct {
	Keysheet Keysheet `binding:"required" json:"keysheet"`
	Text     string   `json:"text"`
}

type EncryptResponse struct {
	Text        string   `json:"text"`
	Positions   []int    `json:"positions"`
	Plugboard   []string `json:"plugboard"`
	Letters     int      `json:"letters"`
	Passthrough int      `json:"passthrough"`
}

func NewEncryptResponseFromDomain(resp encrypttext.Response) EncryptResponse {
	return EncryptResponse{
		Text:        resp.Text,
		Positions:   resp.Positions[:],
		Plugboard:   resp.Plugboard,
		Letters:     resp.Letters,
		Passthrough: resp.Passthrough,
	}
}

type RandomKeysheet struct {
	Keysheet Keysheet `json:"keysheet"`
	Seed     string   `json:"seed"` // uint64 does not survive a trip through javascript numbers
}

func NewRandomKeysheetFromDomain(resp randomizekeysheet.Response) RandomKeysheet {
	return RandomKeysheet{
		Keysheet: NewKeysheetFromDomain(resp.Keysheet),
		Seed:     strconv.FormatUint(resp.Seed, 10),
	}
}
