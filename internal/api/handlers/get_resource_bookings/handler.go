package get_resource_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	"github.com/campusops/SFR-ReservationService/internal/service/bookings"
	"github.com/campusops/SFR-ReservationService/internal/service/bookings/models"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

const (
	msgInvalidParams    = "查詢參數錯誤，日期格式應為 YYYY/MM/DD"
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

// BookingItemResponse одно бронирование в списке
type BookingItemResponse struct {
	ID          int64    `json:"id"`
	ResourceID  string   `json:"resourceId"`
	Date        string   `json:"date"`
	Periods     []string `json:"periods"`
	PeriodNames string   `json:"periodNames"`
	Booker      string   `json:"booker"`
	Reason      *string  `json:"reason,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// Handle GET /api/v1/resources/{resourceId}/bookings?startDate=...&endDate=...
// Отдает бронирования ресурса за диапазон дат для календарной сетки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	startDate, err := types.NewDateStringFromString(r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	endDate, err := types.NewDateStringFromString(r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetResourceBookings(r.Context(), &models.GetResourceBookingsRequest{
		ResourceID: resourceID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/bookings - Invalid params: resource=%s, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /resources/{id}/bookings - Failed: resource=%s, error=%v",
				resourceID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
		}
		return
	}

	out := make([]BookingItemResponse, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		out = append(out, BookingItemResponse{
			ID:          b.ID,
			ResourceID:  b.ResourceID,
			Date:        b.Date.String(),
			Periods:     b.Periods,
			PeriodNames: b.PeriodNames,
			Booker:      b.Booker,
			Reason:      b.Reason,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		})
	}

	h.logger.Info("GET /resources/{id}/bookings - resource=%s, count=%d", resourceID, len(out))
	handlers.RespondJSON(w, http.StatusOK, out)
}
