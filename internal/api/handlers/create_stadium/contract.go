package create_stadium

import (
	"context"

	createStadium "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_stadium"
)

type CreateStadiumUseCase interface {
	Execute(ctx context.Context, req *createStadium.Request) (*createStadium.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
