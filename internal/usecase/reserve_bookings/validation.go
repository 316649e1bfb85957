package reserve_bookings

import (
	"fmt"

	"github.com/campusops/SFR-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Любая ошибка валидации отклоняет запрос целиком, до обращений к хранилищу.
func validateRequest(req *Request, catalog *domain.PeriodCatalog) error {
	if req.ResourceID == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}

	for _, d := range req.Dates {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if len(req.Periods) == 0 {
		return fmt.Errorf("%w: at least one period is required", ErrInvalidInput)
	}

	for _, id := range req.Periods {
		if !catalog.Has(id) {
			return fmt.Errorf("%w: unknown period id %q", ErrInvalidInput, id)
		}
	}

	return nil
}

// normalizePeriods убирает дубликаты периодов, сохраняя порядок
func normalizePeriods(periods []string) []string {
	seen := make(map[string]struct{}, len(periods))
	out := make([]string, 0, len(periods))
	for _, id := range periods {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
