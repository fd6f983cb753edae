package create_stadium

import (
	"encoding/json"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums/models"
	createStadium "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_stadium"
)

// CreateStadiumRequest HTTP request model
type CreateStadiumRequest struct {
	OwnerID     *int64          `json:"owner_id,omitempty"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Location    string          `json:"location"`
	District    string          `json:"district"`
	Price       json.RawMessage `json:"price"` // число или строка
	Capacity    int             `json:"capacity"`
	SportType   string          `json:"sport_type"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateStadiumRequest) ToUseCaseRequest() (*createStadium.Request, error) {
	price, err := handlers.ParseDecimal(r.Price)
	if err != nil {
		return nil, createStadium.NewFieldError("price", "invalid price, expected a decimal number")
	}

	return &createStadium.Request{
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		District:    r.District,
		Price:       price,
		Capacity:    r.Capacity,
		SportType:   r.SportType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в формат каталога
func FromUseCaseResponse(resp *createStadium.Response) *models.StadiumResponse {
	return &models.StadiumResponse{
		ID:          resp.ID,
		OwnerID:     resp.OwnerID,
		Name:        resp.Name,
		Description: resp.Description,
		Location:    resp.Location,
		District:    resp.District,
		Price:       resp.Price.StringFixed(2),
		Capacity:    resp.Capacity,
		SportType:   resp.SportType,
		IsActive:    resp.IsActive,
		CreatedAt:   resp.CreatedAt,
	}
}
