package create_stadium

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

func validateRequest(req *Request) error {
	required := []struct {
		field, value string
		limit        int
	}{
		{"name", req.Name, domain.MaxStadiumNameLength},
		{"location", req.Location, domain.MaxStadiumLocationLength},
		{"district", req.District, domain.MaxStadiumDistrictLength},
		{"sport_type", req.SportType, domain.MaxSportTypeLength},
	}

	missing := make([]string, 0)
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.field)
		}
	}
	if req.Price == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return missingFields(missing)
	}

	for _, f := range required {
		if utf8.RuneCountInString(strings.TrimSpace(f.value)) > f.limit {
			return NewFieldError(f.field, fmt.Sprintf("%s must not exceed %d characters", f.field, f.limit))
		}
	}

	if req.OwnerID != nil && *req.OwnerID <= 0 {
		return NewFieldError("owner_id", "owner_id must be positive")
	}
	if req.Price.IsNegative() {
		return NewFieldError("price", "price must not be negative")
	}
	if !req.Price.Equal(req.Price.Round(domain.PriceScale)) {
		return NewFieldError("price", fmt.Sprintf("price must have at most %d decimal places", domain.PriceScale))
	}
	if req.Price.GreaterThanOrEqual(decimal.New(1, domain.PriceMaxDigits)) {
		return NewFieldError("price", fmt.Sprintf("price must be less than 10^%d", domain.PriceMaxDigits))
	}
	if req.Capacity < 0 {
		return NewFieldError("capacity", "capacity must not be negative")
	}

	return nil
}
