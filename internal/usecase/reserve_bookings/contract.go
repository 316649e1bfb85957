package reserve_bookings

import (
	"context"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByResourceAndDate(ctx context.Context, resourceID string, date types.DateString) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписаний ресурсов
type ScheduleRepository interface {
	GetByResource(ctx context.Context, resourceID string) (*domain.ResourceSchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
