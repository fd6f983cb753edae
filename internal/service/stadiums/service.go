package stadiums

import (
	"context"
	"errors"
	"fmt"

	stadiumRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/stadium"
	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums/models"
)

// Service сервис каталога стадионов
type Service struct {
	stadiumRepo StadiumRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса стадионов
func NewService(stadiumRepo StadiumRepository, logger Logger) *Service {
	return &Service{
		stadiumRepo: stadiumRepo,
		logger:      logger,
	}
}

// GetByID получает стадион по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StadiumResponse, error) {
	stadium, err := s.stadiumRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stadiumRepo.ErrStadiumNotFound) {
			s.logger.Warn("GetByID: stadium id=%d not found", id)
			return nil, ErrStadiumNotFound
		}
		s.logger.Error("GetByID: repository error for stadium id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStadium(stadium), nil
}

// List получает каталог стадионов по фильтру
func (s *Service) List(ctx context.Context, req *models.ListStadiumsRequest) ([]models.StadiumResponse, error) {
	s.logger.Info("List: district=%v, sport_type=%v, active_only=%t", req.District, req.SportType, req.ActiveOnly)

	stadiums, err := s.stadiumRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStadiums(stadiums), nil
}
