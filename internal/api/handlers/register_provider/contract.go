package register_provider

import (
	"context"

	registerProvider "github.com/m04kA/SMC-PetCareService/internal/usecase/register_provider"
)

type RegisterProviderUseCase interface {
	Execute(ctx context.Context, req *registerProvider.Request) (*registerProvider.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
