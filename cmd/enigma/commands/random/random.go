package random

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/core/entities/keysheet"
	"github.com/sergeii/enigma/internal/core/usecases/randomizekeysheet"
)

type command struct {
	Seed *uint64 `help:"Reproduce the key sheet generated from this seed"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	var cont container.Container
	var logger *zerolog.Logger

	app := builder.Add(fx.Populate(&cont, &logger)).Build()
	if err := app.Err(); err != nil {
		return err
	}

	return c.execute(context.Background(), cont.RandomizeKeysheet, logger, os.Stdout)
}

func (c *command) execute(
	ctx context.Context,
	uc randomizekeysheet.UseCase,
	logger *zerolog.Logger,
	stdout io.Writer,
) error {
	req := randomizekeysheet.NewRequest()
	if c.Seed != nil {
		req = randomizekeysheet.NewSeededRequest(*c.Seed)
	}

	resp, err := uc.Execute(ctx, req)
	if err != nil {
		return err
	}

	logger.Info().Uint64("seed", resp.Seed).Msg("Generated random key sheet")

	_, err = fmt.Fprintln(stdout, formatFlags(resp.Keysheet))
	return err
}

// formatFlags renders the key sheet as flags accepted by the encrypt command.
func formatFlags(ks keysheet.Keysheet) string {
	return fmt.Sprintf(
		"--reflector %s --rotors %s --rings %s --positions %s --plugboard %q",
		ks.Reflector,
		strings.Join(ks.Rotors[:], ","),
		joinInts(ks.Rings),
		joinInts(ks.Positions),
		ks.Plugboard,
	)
}

func joinInts(values [3]int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

type CLI struct {
	Random command `cmd:"" help:"Generate a random key sheet"`
}
