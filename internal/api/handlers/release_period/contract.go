package release_period

import (
	"context"

	"github.com/campusops/SFR-ReservationService/internal/service/bookings/models"
)

type BookingService interface {
	ReleasePeriod(ctx context.Context, bookingID int64, periodID string) (*models.ReleasePeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
