package encrypt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/core/entities/keysheet"
	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
	"github.com/sergeii/enigma/pkg/charset"
)

var ErrSlotCount = errors.New("exactly three values are required, left to right")

type command struct {
	Reflector string   `default:"B"        env:"ENIGMA_REFLECTOR" help:"Reflector type (B or C)"`
	Rotors    []string `default:"I,II,III" env:"ENIGMA_ROTORS"    help:"Rotor types for the left, middle and right slots"`
	Rings     []int    `default:"0,0,0"    env:"ENIGMA_RINGS"     help:"Ring settings, zero based, left to right"`
	Positions []int    `default:"0,0,0"    env:"ENIGMA_POSITIONS" help:"Starting positions, zero based, left to right"`
	Plugboard string   `default:""         env:"ENIGMA_PLUGBOARD" help:"Plugboard pairs, e.g. \"AB CD EF\""`
	Charset   string   `default:"utf-8"    env:"ENIGMA_CHARSET"   help:"Character set of the input and output (utf-8, latin1, windows-1252)"` // nolint:lll
	Trace     bool     `help:"Log the rotor positions after the last letter"`

	Text []string `arg:"" optional:"" help:"Text to encrypt or decrypt. Read from stdin when omitted"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	var cont container.Container
	var logger *zerolog.Logger

	app := builder.Add(fx.Populate(&cont, &logger)).Build()
	if err := app.Err(); err != nil {
		return err
	}

	return c.execute(context.Background(), cont.EncryptText, logger, os.Stdin, os.Stdout)
}

func (c *command) keysheet() (keysheet.Keysheet, error) {
	if len(c.Rotors) != 3 {
		return keysheet.Blank, fmt.Errorf("rotors: %w", ErrSlotCount)
	}
	if len(c.Rings) != 3 {
		return keysheet.Blank, fmt.Errorf("rings: %w", ErrSlotCount)
	}
	if len(c.Positions) != 3 {
		return keysheet.Blank, fmt.Errorf("positions: %w", ErrSlotCount)
	}
	ks := keysheet.Keysheet{
		Reflector: c.Reflector,
		Plugboard: c.Plugboard,
	}
	copy(ks.Rotors[:], c.Rotors)
	copy(ks.Rings[:], c.Rings)
	copy(ks.Positions[:], c.Positions)
	return ks, nil
}

func (c *command) execute(
	ctx context.Context,
	uc encrypttext.UseCase,
	logger *zerolog.Logger,
	stdin io.Reader,
	stdout io.Writer,
) error {
	enc, err := charset.Lookup(c.Charset)
	if err != nil {
		return err
	}

	ks, err := c.keysheet()
	if err != nil {
		return err
	}

	var raw []byte
	if len(c.Text) > 0 {
		raw = []byte(strings.Join(c.Text, " "))
	} else if raw, err = io.ReadAll(stdin); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	text, err := charset.Decode(enc, raw)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	resp, err := uc.Execute(ctx, encrypttext.NewRequest(ks, text))
	if err != nil {
		return err
	}

	if c.Trace {
		logger.Info().
			Stringer("keysheet", ks).
			Ints("positions", resp.Positions[:]).
			Strs("plugboard", resp.Plugboard).
			Int("letters", resp.Letters).
			Msg("Encryption completed")
	}

	out := resp.Text
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	encoded, err := charset.Encode(enc, out)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = stdout.Write(encoded)
	return err
}

type CLI struct {
	Encrypt command `cmd:"" help:"Encrypt or decrypt text with the given key sheet"`
}
