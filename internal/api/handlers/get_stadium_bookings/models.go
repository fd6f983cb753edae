package get_stadium_bookings

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустые параметры означают отсутствие фильтра
func ToServiceRequest(stadiumID int64, startDateStr, endDateStr, statusStr string) (*models.GetStadiumBookingsRequest, error) {
	req := &models.GetStadiumBookingsRequest{StadiumID: stadiumID}

	if startDateStr != "" {
		d, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q: %w", startDateStr, err)
		}
		req.StartDate = &d
	}

	if endDateStr != "" {
		d, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q: %w", endDateStr, err)
		}
		req.EndDate = &d
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
