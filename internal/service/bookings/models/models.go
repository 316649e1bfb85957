package models

import (
	"time"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// GetResourceBookingsRequest запрос бронирований ресурса за диапазон дат
type GetResourceBookingsRequest struct {
	ResourceID string
	StartDate  types.DateString // включительно
	EndDate    types.DateString // включительно
}

// BookingResponse модель бронирования для отдачи наружу
type BookingResponse struct {
	ID          int64
	ResourceID  string
	Date        types.DateString
	Periods     []string
	PeriodNames string
	Booker      string
	Reason      *string
	CreatedAt   time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// ReleasePeriodResponse результат освобождения одного периода
type ReleasePeriodResponse struct {
	BookingID        int64
	ReleasedPeriod   string
	RemainingPeriods []string
	Deleted          bool // бронирование удалено целиком (последний период)
}

// FromDomainBooking конвертирует доменное бронирование в модель ответа
func FromDomainBooking(b *domain.Booking, catalog *domain.PeriodCatalog) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ResourceID:  b.ResourceID,
		Date:        b.Date,
		Periods:     b.Periods,
		PeriodNames: catalog.JoinNames(b.Periods),
		Booker:      b.BookerName(),
		Reason:      b.Reason,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking, catalog *domain.PeriodCatalog) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b, catalog))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
