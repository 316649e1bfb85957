package reserve_bookings

import (
	"context"

	reserveBookings "github.com/campusops/SFR-ReservationService/internal/usecase/reserve_bookings"
)

type ReserveBookingsUseCase interface {
	Execute(ctx context.Context, req *reserveBookings.Request) (*reserveBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
