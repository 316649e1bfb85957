package query_history

import (
	"errors"
	"net/http"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	queryHistory "github.com/campusops/SFR-ReservationService/internal/usecase/query_history"
)

const (
	msgInvalidMonth     = "月份格式錯誤，應為 YYYY-MM"
	msgStoreUnavailable = "歷史記錄暫時無法載入，請稍後再試"
)

type Handler struct {
	useCase QueryHistoryUseCase
	logger  Logger
}

func NewHandler(useCase QueryHistoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/history?month=YYYY-MM[&resourceId=...]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	resourceID := r.URL.Query().Get("resourceId")

	useCaseReq, err := ToUseCaseRequest(monthStr, resourceID)
	if err != nil {
		h.logger.Warn("GET /history - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, queryHistory.ErrInvalidInput):
			h.logger.Warn("GET /history - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, queryHistory.ErrStoreUnavailable):
			h.logger.Error("GET /history - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /history - Failed to query history: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /history - month=%s, entries=%d", monthStr, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
