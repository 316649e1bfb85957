package query_history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	"github.com/campusops/SFR-ReservationService/pkg/ptr"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// UseCase use case запроса истории бронирований за месяц
type UseCase struct {
	bookingRepo BookingRepository
	catalog     *domain.PeriodCatalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalog *domain.PeriodCatalog, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// Execute возвращает бронирования за месяц, отсортированные по дате по
// убыванию. Идентификаторы периодов отображаются в имена из каталога;
// неизвестные идентификаторы выводятся как есть. Пустой месяц - пустой
// список, не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QueryHistory: year=%d, month=%d, resource=%s",
		req.Year, int(req.Month), resourceLabel(req.ResourceID))

	// 1. Валидация селектора месяца (до обращений к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QueryHistory: validation failed: %v", err)
		return nil, err
	}

	// 2. Включительный диапазон месяца с учетом числа дней и високосных лет
	startDate, endDate, err := types.MonthRange(req.Year, req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Читаем бронирования за диапазон
	bookings, err := uc.bookingRepo.GetByDateRange(ctx, domain.HistoryFilter{
		ResourceID: req.ResourceID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		uc.logger.Error("QueryHistory: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
	}

	// 4. Порядок ответа - по дате по убыванию. Репозиторий отдает
	// date DESC, created_at DESC; стабильная сортировка закрепляет
	// контракт независимо от хранилища и сохраняет порядок внутри даты
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date.IsAfter(bookings[j].Date)
	})

	entries := make([]Entry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, Entry{
			BookingID:   b.ID,
			ResourceID:  b.ResourceID,
			Date:        b.Date,
			PeriodIDs:   b.Periods,
			PeriodNames: uc.catalog.JoinNames(b.Periods),
			Booker:      b.BookerName(),
			Reason:      ptr.Deref(b.Reason),
			CreatedAt:   b.CreatedAt,
		})
	}

	uc.logger.Info("QueryHistory: %d entries for %04d/%02d", len(entries), req.Year, int(req.Month))

	return &Response{
		Year:    req.Year,
		Month:   req.Month,
		Entries: entries,
	}, nil
}

// validateRequest проверяет селектор месяца
func validateRequest(req *Request) error {
	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be in 1..12", ErrInvalidInput)
	}
	if req.ResourceID != nil && *req.ResourceID == "" {
		return fmt.Errorf("%w: resourceID must not be empty when set", ErrInvalidInput)
	}
	return nil
}

func resourceLabel(resourceID *string) string {
	if resourceID == nil {
		return "<all>"
	}
	return *resourceID
}
