package get_available_slots

import (
	"time"

	"github.com/samber/lo"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StadiumRental/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	StadiumID int64           `json:"stadium_id"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
	Price     string `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StadiumID: resp.StadiumID,
		Slots: lo.Map(resp.Slots, func(s getAvailableSlots.Slot, _ int) AvailableSlot {
			return AvailableSlot{
				StartTime: s.StartTime.String(),
				EndTime:   s.EndTime.String(),
				Available: s.Available,
				Price:     s.Price.StringFixed(2),
			}
		}),
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(stadiumID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StadiumID: stadiumID,
		Date:      date,
	}, nil
}
