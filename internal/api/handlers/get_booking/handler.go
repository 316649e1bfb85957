package get_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	"github.com/campusops/SFR-ReservationService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "預約編號格式錯誤"
	msgBookingNotFound  = "找不到該筆預約"
	msgStoreUnavailable = "預約資料暫時無法載入，請稍後再試"
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

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64    `json:"id"`
	ResourceID  string   `json:"resourceId"`
	Date        string   `json:"date"`
	Periods     []string `json:"periods"`
	PeriodNames string   `json:"periodNames"`
	Booker      string   `json:"booker"`
	Reason      *string  `json:"reason,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking %d not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed: booking=%d, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookingResponse{
		ID:          booking.ID,
		ResourceID:  booking.ResourceID,
		Date:        booking.Date.String(),
		Periods:     booking.Periods,
		PeriodNames: booking.PeriodNames,
		Booker:      booking.Booker,
		Reason:      booking.Reason,
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
	})
}
