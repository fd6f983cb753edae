package create_stadium

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	stadiumRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/stadium"
	userRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/user"
	"github.com/m04kA/SMC-StadiumRental/pkg/ptr"
)

// UseCase use case для регистрации стадиона владельцем
type UseCase struct {
	stadiumRepo StadiumRepository
	userRepo    UserRepository
	cache       StadiumCache
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil, если кэш стадионов выключен
func NewUseCase(
	stadiumRepo StadiumRepository,
	userRepo UserRepository,
	cache StadiumCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		stadiumRepo: stadiumRepo,
		userRepo:    userRepo,
		cache:       cache,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute проверяет владельца и вставляет стадион в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateStadium: name=%q, district=%q, owner=%v", req.Name, req.District, req.OwnerID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateStadium: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Stadium

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if req.OwnerID != nil {
			if _, err := uc.userRepo.GetByID(txCtx, *req.OwnerID); err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					uc.logger.Warn("CreateStadium: owner id=%d not found", *req.OwnerID)
					return ErrOwnerNotFound
				}
				return fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
			}
		}

		created, err := uc.stadiumRepo.Create(txCtx, newStadium(req))
		if err != nil {
			switch {
			case errors.Is(err, stadiumRepo.ErrOwnerReference):
				return ErrOwnerNotFound
			case errors.Is(err, stadiumRepo.ErrInvalidValue):
				uc.logger.Warn("CreateStadium: storage rejected values: %v", err)
				return &ValidationError{Reason: "stadium values exceed storage limits"}
			}
			return fmt.Errorf("%w: failed to create stadium: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrOwnerNotFound) {
			uc.logger.Error("CreateStadium: %v", err)
		}
		return nil, err
	}

	// Ключ мог остаться от стадиона с тем же id до пересоздания БД
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, result.ID); err != nil {
			uc.logger.Warn("CreateStadium: failed to invalidate cache for stadium id=%d: %v", result.ID, err)
		}
	}

	uc.logger.Info("CreateStadium: successfully created stadium id=%d", result.ID)
	return toResponse(result), nil
}

func newStadium(req *Request) *domain.Stadium {
	var description *string
	if d := strings.TrimSpace(ptr.Value(req.Description)); d != "" {
		description = &d
	}

	return &domain.Stadium{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: description,
		Location:    strings.TrimSpace(req.Location),
		District:    strings.TrimSpace(req.District),
		Price:       *req.Price,
		Capacity:    req.Capacity,
		SportType:   strings.TrimSpace(req.SportType),
	}
}

func toResponse(s *domain.Stadium) *Response {
	return &Response{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Location:    s.Location,
		District:    s.District,
		Price:       s.Price,
		Capacity:    s.Capacity,
		SportType:   s.SportType,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}
