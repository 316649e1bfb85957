package get_resource_schedule

import (
	"context"

	"github.com/campusops/SFR-ReservationService/internal/domain"
)

type ScheduleService interface {
	Get(ctx context.Context, resourceID string) (*domain.ResourceSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
