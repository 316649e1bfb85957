package reserve_bookings

import (
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// Request запрос на бронирование: один набор периодов одного ресурса
// на одну или несколько дат
type Request struct {
	ResourceID string             // идентификатор ресурса (например, "禮堂")
	Dates      []types.DateString // целевые даты, >= 1
	Periods    []string           // набор периодов, непустой
	Booker     *string            // имя бронирующего (опционально)
	Reason     *string            // причина бронирования (опционально)
}

// DateStatus исход обработки одной даты
type DateStatus string

const (
	// DateStatusCommitted дата забронирована
	DateStatusCommitted DateStatus = "committed"
	// DateStatusRejected дата отклонена (конфликт или закрытый слот)
	DateStatusRejected DateStatus = "rejected"
)

// RejectReason причина отклонения даты
type RejectReason string

const (
	// RejectReasonConflict пересечение с существующим бронированием
	RejectReasonConflict RejectReason = "conflict"
	// RejectReasonClosed период закрыт фиксированным расписанием ресурса
	RejectReasonClosed RejectReason = "closed"
)

// DateResult исход обработки одной даты запроса
type DateResult struct {
	Date      types.DateString
	Status    DateStatus
	BookingID *int64 // заполнен для committed

	// Для rejected: причина и затронутые периоды
	// (пересекающиеся с существующим бронированием либо закрытые)
	Reason         RejectReason
	BlockedPeriods []string
}

// Response результат пакетного бронирования: по одному исходу на каждую
// запрошенную дату, в хронологическом порядке обработки
type Response struct {
	ResourceID string
	Results    []DateResult
	Committed  int
	Rejected   int
}
