package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	bookingRepo "github.com/campusops/SFR-ReservationService/internal/infra/storage/booking"
	"github.com/campusops/SFR-ReservationService/internal/service/bookings/models"
)

// Service сервис чтения и освобождения бронирований
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	catalog     *domain.PeriodCatalog
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	catalog *domain.PeriodCatalog,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		catalog:     catalog,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(booking, s.catalog)
	return &resp, nil
}

// GetResourceBookings получает бронирования ресурса за включительный
// диапазон дат (для отрисовки календарной сетки на стороне клиента).
// Результат отсортирован по дате по убыванию.
func (s *Service) GetResourceBookings(ctx context.Context, req *models.GetResourceBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetResourceBookings: resource=%s, period=%s to %s",
		req.ResourceID, req.StartDate, req.EndDate)

	if err := validateRangeRequest(req); err != nil {
		s.logger.Warn("GetResourceBookings: validation failed: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, domain.HistoryFilter{
		ResourceID: &req.ResourceID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		s.logger.Error("GetResourceBookings: repository error for resource=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: GetResourceBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetResourceBookings: %d bookings for resource=%s", len(bookings), req.ResourceID)
	return models.FromDomainBookingList(bookings, s.catalog), nil
}

// ReleasePeriod освобождает один период бронирования.
// Освобождение последнего периода удаляет бронирование целиком.
// Read-modify-write по полю periods выполняется в сериализуемой
// транзакции с блокировкой строки, чтобы исключить потерю обновлений.
func (s *Service) ReleasePeriod(ctx context.Context, bookingID int64, periodID string) (*models.ReleasePeriodResponse, error) {
	s.logger.Info("ReleasePeriod: booking id=%d, period=%s", bookingID, periodID)

	if periodID == "" {
		return nil, fmt.Errorf("%w: periodID is required", ErrInvalidInput)
	}

	var resp *models.ReleasePeriodResponse

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: ReleasePeriod - repository error: %v", ErrInternal, err)
		}

		if !booking.HasPeriod(periodID) {
			return ErrPeriodNotBooked
		}

		remaining := make([]string, 0, len(booking.Periods)-1)
		for _, p := range booking.Periods {
			if p != periodID {
				remaining = append(remaining, p)
			}
		}

		if len(remaining) == 0 {
			if err := s.bookingRepo.Delete(txCtx, bookingID); err != nil {
				return fmt.Errorf("%w: ReleasePeriod - delete error: %v", ErrInternal, err)
			}
		} else {
			if err := s.bookingRepo.UpdatePeriods(txCtx, bookingID, remaining); err != nil {
				return fmt.Errorf("%w: ReleasePeriod - update error: %v", ErrInternal, err)
			}
		}

		resp = &models.ReleasePeriodResponse{
			BookingID:        bookingID,
			ReleasedPeriod:   periodID,
			RemainingPeriods: remaining,
			Deleted:          len(remaining) == 0,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrPeriodNotBooked) {
			s.logger.Warn("ReleasePeriod: booking id=%d, period=%s: %v", bookingID, periodID, err)
			return nil, err
		}
		s.logger.Error("ReleasePeriod: booking id=%d failed: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("ReleasePeriod: booking id=%d, period=%s released, deleted=%t",
		bookingID, periodID, resp.Deleted)
	return resp, nil
}

// validateRangeRequest проверяет запрос диапазона дат
func validateRangeRequest(req *models.GetResourceBookingsRequest) error {
	if req.ResourceID == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}
	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.EndDate.IsBefore(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	return nil
}
