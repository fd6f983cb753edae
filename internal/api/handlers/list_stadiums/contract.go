package list_stadiums

import (
	"context"

	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums/models"
)

type StadiumService interface {
	List(ctx context.Context, req *models.ListStadiumsRequest) ([]models.StadiumResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
