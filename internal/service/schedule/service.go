package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	scheduleRepo "github.com/campusops/SFR-ReservationService/internal/infra/storage/schedule"
)

// Service сервис управления фиксированными закрытыми слотами ресурсов
type Service struct {
	scheduleRepo ScheduleRepository
	catalog      *domain.PeriodCatalog
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, catalog *domain.PeriodCatalog, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		catalog:      catalog,
		logger:       logger,
	}
}

// Get возвращает расписание ресурса.
// Отсутствие сохраненного расписания означает пустой список закрытых слотов.
func (s *Service) Get(ctx context.Context, resourceID string) (*domain.ResourceSchedule, error) {
	if resourceID == "" {
		return nil, fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	sched, err := s.scheduleRepo.GetByResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return &domain.ResourceSchedule{ResourceID: resourceID, ClosedSlots: []string{}}, nil
		}
		s.logger.Error("GetSchedule: repository error for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return sched, nil
}

// Update заменяет список закрытых слотов ресурса
func (s *Service) Update(ctx context.Context, resourceID string, closedSlots []string) (*domain.ResourceSchedule, error) {
	s.logger.Info("UpdateSchedule: resource=%s, slots=%d", resourceID, len(closedSlots))

	if resourceID == "" {
		return nil, fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	for _, slot := range closedSlots {
		if err := s.validateSlot(slot); err != nil {
			s.logger.Warn("UpdateSchedule: resource=%s: %v", resourceID, err)
			return nil, err
		}
	}

	sched, err := s.scheduleRepo.Upsert(ctx, resourceID, closedSlots)
	if err != nil {
		s.logger.Error("UpdateSchedule: repository error for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: resource=%s updated", resourceID)
	return sched, nil
}

// validateSlot проверяет токен вида "<weekday>_<periodId>", например
// "mon_period1". Идентификатор периода может содержать подчеркивания.
func (s *Service) validateSlot(slot string) error {
	parts := strings.SplitN(slot, "_", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	if !domain.ValidWeekdayToken(parts[0]) {
		return fmt.Errorf("%w: unknown weekday in %q", ErrInvalidSlot, slot)
	}
	if !s.catalog.Has(parts[1]) {
		return fmt.Errorf("%w: unknown period in %q", ErrInvalidSlot, slot)
	}
	return nil
}
