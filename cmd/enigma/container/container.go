package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
	"github.com/sergeii/enigma/internal/core/usecases/listcomponents"
	"github.com/sergeii/enigma/internal/core/usecases/randomizekeysheet"
)

type Container struct {
	EncryptText       encrypttext.UseCase
	RandomizeKeysheet randomizekeysheet.UseCase
	ListComponents    listcomponents.UseCase
}

func New(
	encryptTextUseCase encrypttext.UseCase,
	randomizeKeysheetUseCase randomizekeysheet.UseCase,
	listComponentsUseCase listcomponents.UseCase,
) Container {
	return Container{
		EncryptText:       encryptTextUseCase,
		RandomizeKeysheet: randomizeKeysheetUseCase,
		ListComponents:    listComponentsUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(encrypttext.New),
	fx.Provide(randomizekeysheet.New),
	fx.Provide(listcomponents.New),
	fx.Provide(New),
)
