package get_stadium

import (
	"context"

	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums/models"
)

type StadiumService interface {
	GetByID(ctx context.Context, id int64) (*models.StadiumResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
