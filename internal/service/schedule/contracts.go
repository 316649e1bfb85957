package schedule

import (
	"context"

	"github.com/campusops/SFR-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний ресурсов
type ScheduleRepository interface {
	GetByResource(ctx context.Context, resourceID string) (*domain.ResourceSchedule, error)
	Upsert(ctx context.Context, resourceID string, closedSlots []string) (*domain.ResourceSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
