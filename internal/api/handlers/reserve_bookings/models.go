package reserve_bookings

import (
	"errors"

	reserveBookings "github.com/campusops/SFR-ReservationService/internal/usecase/reserve_bookings"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// errRepeatWithMultipleDates повтор по неделям сочетается только с одной датой
var errRepeatWithMultipleDates = errors.New("repeatWeeklyUntil requires exactly one date")

// ReserveRequest HTTP request model
type ReserveRequest struct {
	ResourceID string   `json:"resourceId"`
	Dates      []string `json:"dates"`   // "2025/10/15"
	Periods    []string `json:"periods"` // ["period1", "period2"]
	Booker     *string  `json:"booker,omitempty"`
	Reason     *string  `json:"reason,omitempty"`

	// Еженедельный повтор: при одной дате в Dates достраивает даты
	// с шагом 7 дней до указанной включительно
	RepeatWeeklyUntil *string `json:"repeatWeeklyUntil,omitempty"`
}

// DateResultResponse исход одной даты
type DateResultResponse struct {
	Date           string   `json:"date"`
	Status         string   `json:"status"` // committed | rejected
	BookingID      *int64   `json:"bookingId,omitempty"`
	Reason         string   `json:"reason,omitempty"` // conflict | closed
	BlockedPeriods []string `json:"blockedPeriods,omitempty"`
}

// ReserveResponse HTTP response model
type ReserveResponse struct {
	ResourceID string               `json:"resourceId"`
	Results    []DateResultResponse `json:"results"`
	Committed  int                  `json:"committed"`
	Rejected   int                  `json:"rejected"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case,
// разворачивая еженедельный повтор в явный список дат
func (r *ReserveRequest) ToUseCaseRequest() (*reserveBookings.Request, error) {
	dates := make([]types.DateString, 0, len(r.Dates))
	for _, s := range r.Dates {
		d, err := types.NewDateStringFromString(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	if r.RepeatWeeklyUntil != nil {
		expanded, err := expandWeekly(dates, *r.RepeatWeeklyUntil)
		if err != nil {
			return nil, err
		}
		dates = expanded
	}

	return &reserveBookings.Request{
		ResourceID: r.ResourceID,
		Dates:      dates,
		Periods:    r.Periods,
		Booker:     r.Booker,
		Reason:     r.Reason,
	}, nil
}

// expandWeekly достраивает даты с шагом 7 дней от единственной начальной
// даты до until включительно
func expandWeekly(dates []types.DateString, until string) ([]types.DateString, error) {
	if len(dates) != 1 {
		return nil, errRepeatWithMultipleDates
	}

	untilDate, err := types.NewDateStringFromString(until)
	if err != nil {
		return nil, err
	}

	start, err := dates[0].Time()
	if err != nil {
		return nil, err
	}

	expanded := []types.DateString{dates[0]}
	for cur := start.AddDate(0, 0, 7); ; cur = cur.AddDate(0, 0, 7) {
		next := types.NewDateString(cur)
		if next.IsAfter(untilDate) {
			break
		}
		expanded = append(expanded, next)
	}
	return expanded, nil
}

// PartialReserveResponse тело ответа при обрыве пакета: сообщение об ошибке
// вместе с уже определенными исходами дат. Закоммиченные даты остаются
// закоммиченными, поэтому вызывающая сторона должна их видеть.
type PartialReserveResponse struct {
	Error      string               `json:"error"`
	ResourceID string               `json:"resourceId,omitempty"`
	Results    []DateResultResponse `json:"results,omitempty"`
	Committed  int                  `json:"committed"`
	Rejected   int                  `json:"rejected"`
}

// FromUseCaseResponsePartial собирает тело ответа для прерванного пакета
func FromUseCaseResponsePartial(resp *reserveBookings.Response, msg string) *PartialReserveResponse {
	full := FromUseCaseResponse(resp)
	return &PartialReserveResponse{
		Error:      msg,
		ResourceID: full.ResourceID,
		Results:    full.Results,
		Committed:  full.Committed,
		Rejected:   full.Rejected,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveBookings.Response) *ReserveResponse {
	results := make([]DateResultResponse, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, DateResultResponse{
			Date:           r.Date.String(),
			Status:         string(r.Status),
			BookingID:      r.BookingID,
			Reason:         string(r.Reason),
			BlockedPeriods: r.BlockedPeriods,
		})
	}

	return &ReserveResponse{
		ResourceID: resp.ResourceID,
		Results:    results,
		Committed:  resp.Committed,
		Rejected:   resp.Rejected,
	}
}
