package randomizekeysheet

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/keysheet"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/random"
)

var ErrUnableToSeed = errors.New("unable to obtain random seed")

type UseCase struct {
	metrics *metrics.Collector
	logger  *zerolog.Logger
}

func New(
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		metrics: metrics,
		logger:  logger,
	}
}

type Request struct {
	seed   uint64
	seeded bool
}

// NewRequest asks for a key sheet drawn from a fresh random seed.
func NewRequest() Request {
	return Request{}
}

// NewSeededRequest asks for the key sheet that the given seed always produces.
func NewSeededRequest(seed uint64) Request {
	return Request{seed: seed, seeded: true}
}

type Response struct {
	Keysheet keysheet.Keysheet
	Seed     uint64
}

func (uc UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	seed := req.seed
	if !req.seeded {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			uc.logger.Error().Err(err).Msg("Failed to obtain random seed")
			return Response{}, ErrUnableToSeed
		}
	}

	ks := keysheet.New(enigma.RandomSettings(random.NewSource(seed)))
	uc.metrics.KeysheetRandomized.WithLabelValues(strconv.FormatBool(req.seeded)).Inc()

	uc.logger.Debug().Uint64("seed", seed).Stringer("keysheet", ks).Msg("Generated random key sheet")

	return Response{Keysheet: ks, Seed: seed}, nil
}
