package models

import (
	"time"

	"github.com/samber/lo"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// ListStadiumsRequest фильтр каталога
type ListStadiumsRequest struct {
	District   *string
	SportType  *string
	ActiveOnly bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListStadiumsRequest) ToDomainFilter() domain.StadiumFilter {
	return domain.StadiumFilter{
		District:   r.District,
		SportType:  r.SportType,
		ActiveOnly: r.ActiveOnly,
	}
}

// StadiumResponse стадион в формате API
type StadiumResponse struct {
	ID          int64     `json:"id"`
	OwnerID     *int64    `json:"owner_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Location    string    `json:"location"`
	District    string    `json:"district"`
	Price       string    `json:"price"`
	Capacity    int       `json:"capacity"`
	SportType   string    `json:"sport_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromDomainStadium конвертирует domain модель в DTO
func FromDomainStadium(s *domain.Stadium) *StadiumResponse {
	return &StadiumResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Location:    s.Location,
		District:    s.District,
		Price:       s.Price.StringFixed(2),
		Capacity:    s.Capacity,
		SportType:   s.SportType,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainStadiums конвертирует список стадионов в DTO
func FromDomainStadiums(stadiums []*domain.Stadium) []StadiumResponse {
	return lo.Map(stadiums, func(s *domain.Stadium, _ int) StadiumResponse {
		return *FromDomainStadium(s)
	})
}
