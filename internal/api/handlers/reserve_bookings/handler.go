package reserve_bookings

import (
	"context"
	"errors"
	"net/http"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	reserveBookings "github.com/campusops/SFR-ReservationService/internal/usecase/reserve_bookings"
)

const (
	msgInvalidRequestBody = "請求內容格式錯誤"
	msgInvalidRequest     = "請求參數錯誤，請檢查場地、日期與節次"
	msgStoreUnavailable   = "系統暫時無法處理預約，請稍後再試"
	msgRequestCancelled   = "請求已中斷，已完成的日期仍然有效"
)

type Handler struct {
	useCase ReserveBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ReserveBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
//
// Конфликт даты не считается ошибкой вызова: ответ 200 содержит построчную
// разбивку по датам, в том числе когда часть дат (или все) отклонена.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveBookings.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: resource=%s, error=%v",
				req.ResourceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, reserveBookings.ErrStoreUnavailable):
			// Закоммиченные до сбоя даты возвращаются вместе с ошибкой
			h.logger.Error("POST /reservations - Store unavailable: resource=%s, error=%v",
				req.ResourceID, err)
			respondPartial(w, result, msgStoreUnavailable)

		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// Отмена вызывающей стороной - не ошибка сервера
			h.logger.Warn("POST /reservations - Cancelled: resource=%s, error=%v",
				req.ResourceID, err)
			respondPartial(w, result, msgRequestCancelled)

		default:
			h.logger.Error("POST /reservations - Failed to reserve: resource=%s, error=%v",
				req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - resource=%s, committed=%d, rejected=%d",
		result.ResourceID, result.Committed, result.Rejected)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// respondPartial отвечает 503 с уже определенными исходами дат пакета
func respondPartial(w http.ResponseWriter, result *reserveBookings.Response, msg string) {
	if result == nil {
		handlers.RespondServiceUnavailable(w, msg)
		return
	}
	handlers.RespondJSON(w, http.StatusServiceUnavailable, FromUseCaseResponsePartial(result, msg))
}
