package update_resource_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	"github.com/campusops/SFR-ReservationService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidSlot        = "禁排時段格式錯誤，應為 weekday_periodId（例如 mon_period1）"
	msgStoreUnavailable   = "禁排時段暫時無法更新，請稍後再試"
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

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	ClosedSlots []string `json:"closedSlots"`
}

// UpdateScheduleResponse HTTP response model
type UpdateScheduleResponse struct {
	ResourceID  string   `json:"resourceId"`
	ClosedSlots []string `json:"closedSlots"`
}

// Handle PUT /api/v1/resources/{resourceId}/schedule
// Полностью заменяет список закрытых слотов ресурса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /resources/{id}/schedule - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ClosedSlots == nil {
		req.ClosedSlots = []string{}
	}

	sched, err := h.service.Update(r.Context(), resourceID, req.ClosedSlots)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSlot):
			h.logger.Warn("PUT /resources/{id}/schedule - Invalid slot: resource=%s, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /resources/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /resources/{id}/schedule - Failed: resource=%s, error=%v",
				resourceID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
		}
		return
	}

	h.logger.Info("PUT /resources/{id}/schedule - resource=%s, slots=%d",
		resourceID, len(sched.ClosedSlots))
	handlers.RespondJSON(w, http.StatusOK, UpdateScheduleResponse{
		ResourceID:  sched.ResourceID,
		ClosedSlots: sched.ClosedSlots,
	})
}
