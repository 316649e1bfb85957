package update_resource_schedule

import (
	"context"

	"github.com/campusops/SFR-ReservationService/internal/domain"
)

type ScheduleService interface {
	Update(ctx context.Context, resourceID string, closedSlots []string) (*domain.ResourceSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
