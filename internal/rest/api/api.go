package api

import (
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/settings"
)

type API struct {
	settings  settings.Settings
	container container.Container
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	settings settings.Settings,
	logger *zerolog.Logger,
	container container.Container,
) *API {
	return &API{
		container: container,
		settings:  settings,
		logger:    logger,
	}
}
