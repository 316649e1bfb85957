package release_period

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	"github.com/campusops/SFR-ReservationService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "預約編號格式錯誤"
	msgBookingNotFound  = "找不到該筆預約"
	msgPeriodNotBooked  = "該預約未包含此節次"
	msgStoreUnavailable = "系統暫時無法取消預約，請稍後再試"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ReleasePeriodResponse HTTP response model
type ReleasePeriodResponse struct {
	BookingID        int64    `json:"bookingId"`
	ReleasedPeriod   string   `json:"releasedPeriod"`
	RemainingPeriods []string `json:"remainingPeriods"`
	Deleted          bool     `json:"deleted"`
}

// Handle DELETE /api/v1/bookings/{bookingId}/periods/{periodId}
// Освобождение последнего периода удаляет бронирование целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/periods/{pid} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}
	periodID := vars["periodId"]

	result, err := h.service.ReleasePeriod(r.Context(), bookingID, periodID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id}/periods/{pid} - Booking %d not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrPeriodNotBooked):
			h.logger.Warn("DELETE /bookings/{id}/periods/{pid} - Booking %d has no period %s",
				bookingID, periodID)
			handlers.RespondNotFound(w, msgPeriodNotBooked)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id}/periods/{pid} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /bookings/{id}/periods/{pid} - Failed: booking=%d, error=%v",
				bookingID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id}/periods/{pid} - booking=%d, period=%s, deleted=%t",
		bookingID, periodID, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, ReleasePeriodResponse{
		BookingID:        result.BookingID,
		ReleasedPeriod:   result.ReleasedPeriod,
		RemainingPeriods: result.RemainingPeriods,
		Deleted:          result.Deleted,
	})
}
