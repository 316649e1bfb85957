package get_resource_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	"github.com/campusops/SFR-ReservationService/internal/service/schedule"
)

const (
	msgInvalidResource  = "場地代號錯誤"
	msgStoreUnavailable = "禁排時段暫時無法載入，請稍後再試"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ResourceID  string   `json:"resourceId"`
	ClosedSlots []string `json:"closedSlots"`
}

// Handle GET /api/v1/resources/{resourceId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	sched, err := h.service.Get(r.Context(), resourceID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/schedule - Invalid resource: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResource)

		default:
			h.logger.Error("GET /resources/{id}/schedule - Failed: resource=%s, error=%v",
				resourceID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ScheduleResponse{
		ResourceID:  sched.ResourceID,
		ClosedSlots: sched.ClosedSlots,
	})
}
