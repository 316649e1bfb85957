package query_history

import (
	"time"

	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// Request селектор месяца истории бронирований
type Request struct {
	ResourceID *string    // nil = все ресурсы
	Year       int        // календарный год
	Month      time.Month // 1..12
}

// Entry одна строка истории: бронирование с отображаемыми именами периодов
type Entry struct {
	BookingID   int64
	ResourceID  string
	Date        types.DateString
	PeriodIDs   []string
	PeriodNames string // имена периодов, соединенные для отображения
	Booker      string // с подстановкой 未知 при отсутствии
	Reason      string // пустая строка при отсутствии
	CreatedAt   time.Time
}

// Response история за месяц, отсортированная по дате по убыванию
type Response struct {
	Year    int
	Month   time.Month
	Entries []Entry
}
