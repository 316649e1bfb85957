package get_periods

import (
	"net/http"

	"github.com/campusops/SFR-ReservationService/internal/api/handlers"
	"github.com/campusops/SFR-ReservationService/internal/domain"
)

type Handler struct {
	catalog *domain.PeriodCatalog
	logger  Logger
}

type Logger interface {
	Info(format string, v ...interface{})
}

func NewHandler(catalog *domain.PeriodCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// PeriodResponse один период каталога
type PeriodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TimeRange string `json:"time"`
	Order     int    `json:"order"`
}

// Handle GET /api/v1/periods
// Каталог неизменяем, ответ всегда 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periods := h.catalog.Periods()

	out := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodResponse{
			ID:        p.ID,
			Name:      p.Name,
			TimeRange: p.TimeRange,
			Order:     p.Order,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}
