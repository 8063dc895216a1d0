package encrypttext

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/keysheet"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/settings"
	"github.com/sergeii/enigma/pkg/enigma"
)

const op = "encrypt"

var (
	ErrInvalidKeysheet      = errors.New("invalid key sheet")
	ErrTextTooLong          = errors.New("text is too long")
	ErrUnableToBuildMachine = errors.New("unable to build machine")
)

type UseCase struct {
	settings settings.Settings
	validate *validator.Validate
	metrics  *metrics.Collector
	clock    clockwork.Clock
	logger   *zerolog.Logger
}

func New(
	settings settings.Settings,
	validate *validator.Validate,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		settings: settings,
		validate: validate,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
	}
}

type Request struct {
	Keysheet keysheet.Keysheet
	Text     string
}

func NewRequest(ks keysheet.Keysheet, text string) Request {
	return Request{
		Keysheet: ks,
		Text:     text,
	}
}

type Response struct {
	Text string
	// rotor positions after the last letter, left to right
	Positions [3]int
	// plugboard pairs that were actually applied
	Plugboard   []string
	Letters     int
	Passthrough int
}

func (uc UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	start := uc.clock.Now()

	if err := req.Keysheet.Validate(uc.validate); err != nil {
		uc.metrics.CipherErrors.WithLabelValues(op).Inc()
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
	}

	length := utf8.RuneCountInString(req.Text)
	if uc.settings.MaxTextLength > 0 && length > uc.settings.MaxTextLength {
		uc.metrics.CipherErrors.WithLabelValues(op).Inc()
		return Response{}, fmt.Errorf(
			"%w: %d characters, at most %d allowed",
			ErrTextTooLong, length, uc.settings.MaxTextLength,
		)
	}

	machineSettings, err := req.Keysheet.Settings()
	if err != nil {
		uc.metrics.CipherErrors.WithLabelValues(op).Inc()
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidKeysheet, err)
	}

	machine, err := enigma.New(machineSettings)
	if err != nil {
		uc.logger.Error().Err(err).Stringer("keysheet", req.Keysheet).Msg("Failed to build machine")
		return Response{}, ErrUnableToBuildMachine
	}

	letters := 0
	for _, r := range req.Text {
		if _, ok := enigma.Symbol(r); ok {
			letters++
		}
	}

	resp := Response{
		Text:        machine.Encrypt(req.Text),
		Positions:   machine.Positions(),
		Plugboard:   machine.Plugboard().Pairs(),
		Letters:     letters,
		Passthrough: length - letters,
	}

	uc.metrics.CipherRequests.WithLabelValues(op).Inc()
	uc.metrics.CipherLetters.Add(float64(resp.Letters))
	uc.metrics.CipherPassthrough.Add(float64(resp.Passthrough))
	uc.metrics.CipherDurations.WithLabelValues(op).Observe(uc.clock.Since(start).Seconds())

	uc.logger.Debug().
		Stringer("keysheet", req.Keysheet).
		Int("letters", resp.Letters).
		Ints("positions", resp.Positions[:]).
		Msg("Encrypted text")

	return resp, nil
}
