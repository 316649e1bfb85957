package query_history

import (
	"fmt"
	"time"

	queryHistory "github.com/campusops/SFR-ReservationService/internal/usecase/query_history"
)

// monthFormat формат месяца в query параметре (как в input type=month)
const monthFormat = "2006-01"

// HistoryEntryResponse одна строка истории
type HistoryEntryResponse struct {
	BookingID   int64    `json:"bookingId"`
	ResourceID  string   `json:"resourceId"`
	Date        string   `json:"date"`
	PeriodIDs   []string `json:"periodIds"`
	PeriodNames string   `json:"periodNames"`
	Booker      string   `json:"booker"`
	Reason      string   `json:"reason"`
	CreatedAt   string   `json:"createdAt"`
}

// HistoryResponse HTTP response model
type HistoryResponse struct {
	Month   string                 `json:"month"`
	Entries []HistoryEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

// ToUseCaseRequest парсит query параметры в модель use case
func ToUseCaseRequest(monthStr, resourceID string) (*queryHistory.Request, error) {
	t, err := time.Parse(monthFormat, monthStr)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", monthStr, err)
	}

	req := &queryHistory.Request{
		Year:  t.Year(),
		Month: t.Month(),
	}
	if resourceID != "" {
		req.ResourceID = &resourceID
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *queryHistory.Response) *HistoryResponse {
	entries := make([]HistoryEntryResponse, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, HistoryEntryResponse{
			BookingID:   e.BookingID,
			ResourceID:  e.ResourceID,
			Date:        e.Date.String(),
			PeriodIDs:   e.PeriodIDs,
			PeriodNames: e.PeriodNames,
			Booker:      e.Booker,
			Reason:      e.Reason,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}

	return &HistoryResponse{
		Month:   fmt.Sprintf("%04d-%02d", resp.Year, int(resp.Month)),
		Entries: entries,
		Total:   len(entries),
	}
}
