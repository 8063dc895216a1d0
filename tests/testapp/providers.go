package testapp

import (
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/settings"
)

const MaxTextLength = 1000

func ProvideSettings() settings.Settings {
	return settings.Settings{
		MaxTextLength: MaxTextLength,
	}
}

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
