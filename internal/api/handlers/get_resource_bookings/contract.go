package get_resource_bookings

import (
	"context"

	"github.com/campusops/SFR-ReservationService/internal/service/bookings/models"
)

type BookingService interface {
	GetResourceBookings(ctx context.Context, req *models.GetResourceBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
