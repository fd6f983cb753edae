package get_available_slots

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

// generateTimeSlots генерирует сетку слотов от открытия до закрытия с шагом slotDuration
// Последний слот должен целиком помещаться до закрытия.
// Для прошедших дат слотов нет, для сегодня отбрасываются уже начавшиеся
func generateTimeSlots(hours Hours, requestDate time.Time, now time.Time) []types.TimeString {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}
	}

	allSlots := make([]types.TimeString, 0)
	current := hours.Open

	for current.IsBefore(hours.Close) {
		slotEnd, err := current.AddMinutes(hours.SlotDurationMinutes)
		if err != nil {
			// Слот выходит за полночь
			break
		}
		if slotEnd.IsAfter(hours.Close) {
			break
		}

		allSlots = append(allSlots, current)
		current = slotEnd
	}

	if !domain.SameDate(requestDate, now) {
		return allSlots
	}

	currentTime := types.NewTimeString(now)
	return lo.Filter(allSlots, func(slot types.TimeString, _ int) bool {
		return !slot.IsBefore(currentTime)
	})
}

// markAvailability помечает слоты, не пересекающиеся ни с одной активной бронью
func markAvailability(
	slots []types.TimeString,
	slotDuration int,
	bookings []*domain.Booking,
	hourlyPrice decimal.Decimal,
) []Slot {
	price := hourlyPrice.Mul(decimal.NewFromInt(int64(slotDuration))).Div(decimal.NewFromInt(60)).Round(2)

	return lo.FilterMap(slots, func(start types.TimeString, _ int) (Slot, bool) {
		end, err := start.AddMinutes(slotDuration)
		if err != nil {
			return Slot{}, false
		}
		return Slot{
			StartTime: start,
			EndTime:   end,
			Available: len(domain.FindOverlapping(bookings, start, end, 0)) == 0,
			Price:     price,
		}, true
	})
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
