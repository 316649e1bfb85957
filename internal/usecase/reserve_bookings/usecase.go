package reserve_bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	scheduleRepo "github.com/campusops/SFR-ReservationService/internal/infra/storage/schedule"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// UseCase use case пакетного бронирования.
//
// Пакет обрабатывается по датам независимо: конфликт на одной дате не
// отменяет остальные. Запрос на несколько дат означает "забронируй те из
// них, которые свободны", поэтому usecase максимизирует число успешных
// коммитов, а не откатывает пакет при первом конфликте.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	catalog      *domain.PeriodCatalog
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	catalog *domain.PeriodCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет пакетное бронирование.
//
// Для каждой даты проверка конфликта и вставка выполняются в одной
// сериализуемой транзакции с блокировкой строк ключа (resource, date):
// проверка "свободно" вне транзакции была бы лишь снимком состояния и
// допускала бы гонку двух конкурентных запросов.
//
// Повторяющиеся даты в одном запросе обрабатываются как независимые
// попытки против текущего состояния хранилища: вторая попытка увидит
// вставку первой и будет отклонена как конфликт.
//
// При отмене контекста уже закоммиченные даты остаются закоммиченными;
// необработанные даты не планируются. При ошибке хранилища возвращаются
// уже определенные исходы вместе с ErrStoreUnavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveBookings: resource=%s, dates=%d, periods=%v",
		req.ResourceID, len(req.Dates), req.Periods)

	// 1. Валидация входных данных (без обращений к хранилищу)
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("ReserveBookings: validation failed: %v", err)
		return nil, err
	}

	periods := normalizePeriods(req.Periods)

	// 2. Загружаем фиксированное расписание ресурса (закрытые слоты)
	schedule, err := uc.loadSchedule(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}

	// 3. Обрабатываем даты в хронологическом порядке
	return uc.processDates(ctx, req, periods, schedule)
}

// loadSchedule получает расписание ресурса; отсутствие записи означает,
// что закрытых слотов нет
func (uc *UseCase) loadSchedule(ctx context.Context, resourceID string) (*domain.ResourceSchedule, error) {
	schedule, err := uc.scheduleRepo.GetByResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return &domain.ResourceSchedule{ResourceID: resourceID}, nil
		}
		uc.logger.Error("ReserveBookings: failed to load schedule for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: failed to load resource schedule: %v", ErrStoreUnavailable, err)
	}
	return schedule, nil
}

// processDates сортирует даты по возрастанию (среди равных сохраняется
// порядок подачи) и обрабатывает каждую независимо
func (uc *UseCase) processDates(ctx context.Context, req *Request, periods []string, schedule *domain.ResourceSchedule) (*Response, error) {
	sorted := append([]types.DateString(nil), req.Dates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IsBefore(sorted[j])
	})

	resp := &Response{
		ResourceID: req.ResourceID,
		Results:    make([]DateResult, 0, len(sorted)),
	}

	for _, date := range sorted {
		// Отмена запроса: уже обработанные даты остаются как есть,
		// оставшиеся не планируются
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("ReserveBookings: cancelled after %d of %d dates: %v",
				len(resp.Results), len(sorted), err)
			return resp, err
		}

		result, err := uc.processDate(ctx, req, periods, schedule, date)
		if err != nil {
			return resp, err
		}

		resp.Results = append(resp.Results, *result)
		if result.Status == DateStatusCommitted {
			resp.Committed++
		} else {
			resp.Rejected++
		}
	}

	uc.logger.Info("ReserveBookings: resource=%s done, committed=%d, rejected=%d",
		req.ResourceID, resp.Committed, resp.Rejected)

	return resp, nil
}

// processDate обрабатывает одну дату пакета
func (uc *UseCase) processDate(
	ctx context.Context,
	req *Request,
	periods []string,
	schedule *domain.ResourceSchedule,
	date types.DateString,
) (*DateResult, error) {
	// Закрытые слоты проверяются до транзакции: расписание статично
	// в рамках запроса
	closed, err := schedule.ClosedPeriodsOn(date, periods)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if len(closed) > 0 {
		uc.logger.Info("ReserveBookings: resource=%s date=%s rejected, closed slots: %v",
			req.ResourceID, date, closed)
		return &DateResult{
			Date:           date,
			Status:         DateStatusRejected,
			Reason:         RejectReasonClosed,
			BlockedPeriods: closed,
		}, nil
	}

	var result *DateResult

	// Проверка конфликта и вставка - одна неделимая условная запись:
	// сериализуемая транзакция + FOR UPDATE на строках ключа (resource, date)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByResourceAndDate(txCtx, req.ResourceID, date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
		}

		conflicts := conflictingPeriods(periods, existing)
		if len(conflicts) > 0 {
			// Конфликт - штатный исход даты, не ошибка транзакции
			result = &DateResult{
				Date:           date,
				Status:         DateStatusRejected,
				Reason:         RejectReasonConflict,
				BlockedPeriods: conflicts,
			}
			return nil
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ResourceID: req.ResourceID,
			Date:       date,
			Periods:    periods,
			Booker:     req.Booker,
			Reason:     req.Reason,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrStoreUnavailable, err)
		}

		result = &DateResult{
			Date:      date,
			Status:    DateStatusCommitted,
			BookingID: &created.ID,
		}
		return nil
	})

	if err != nil {
		uc.logger.Error("ReserveBookings: resource=%s date=%s store failure: %v",
			req.ResourceID, date, err)
		if errors.Is(err, ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if result.Status == DateStatusCommitted {
		uc.logger.Info("ReserveBookings: resource=%s date=%s committed, booking id=%d",
			req.ResourceID, date, *result.BookingID)
	} else {
		uc.logger.Info("ReserveBookings: resource=%s date=%s rejected, conflicts: %v",
			req.ResourceID, date, result.BlockedPeriods)
	}

	return result, nil
}
