package query_history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	"github.com/campusops/SFR-ReservationService/pkg/ptr"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.HistoryFilter
}

func (f *fakeBookingRepo) GetByDateRange(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func newTestUseCase(t *testing.T, repo *fakeBookingRepo) *UseCase {
	t.Helper()
	catalog, err := domain.NewPeriodCatalog(domain.DefaultPeriods)
	require.NoError(t, err)
	return NewUseCase(repo, catalog, nopLogger{})
}

func TestExecute_MonthRangePassedToRepository(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.February})
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2024/02/01"), repo.lastFilter.StartDate)
	assert.Equal(t, types.DateString("2024/02/29"), repo.lastFilter.EndDate, "leap year February has 29 days")
	assert.Nil(t, repo.lastFilter.ResourceID)
}

func TestExecute_ResourceFilterForwarded(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID: ptr.Ptr("禮堂"),
		Year:       2025,
		Month:      time.October,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.ResourceID)
	assert.Equal(t, "禮堂", *repo.lastFilter.ResourceID)
	assert.Equal(t, types.DateString("2025/10/01"), repo.lastFilter.StartDate)
	assert.Equal(t, types.DateString("2025/10/31"), repo.lastFilter.EndDate)
}

func TestExecute_EntriesMappedWithDisplayNames(t *testing.T) {
	created := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:         7,
			ResourceID: "禮堂",
			Date:       "2025/10/20",
			Periods:    []string{"period1", "lunch"},
			Booker:     ptr.Ptr("王老師"),
			Reason:     ptr.Ptr("班會"),
			CreatedAt:  created,
		},
		{
			ID:         5,
			ResourceID: "音樂教室",
			Date:       "2025/10/12",
			Periods:    []string{"period3", "ghost_period"},
			// Booker и Reason отсутствуют
		},
	}}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.October})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)

	first := resp.Entries[0]
	assert.Equal(t, int64(7), first.BookingID)
	assert.Equal(t, "第一節、午餐/午休", first.PeriodNames)
	assert.Equal(t, "王老師", first.Booker)
	assert.Equal(t, "班會", first.Reason)
	assert.Equal(t, created, first.CreatedAt)

	// Неизвестный период выводится как есть, booker подставляется
	second := resp.Entries[1]
	assert.Equal(t, "第三節、ghost_period", second.PeriodNames)
	assert.Equal(t, "未知", second.Booker)
	assert.Equal(t, "", second.Reason)
}

func TestExecute_EntriesOrderedByDateDescending(t *testing.T) {
	// Порядок хранилища не имеет значения: ответ всегда date DESC
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Date: "2024/03/05", Periods: []string{"period1"}},
		{ID: 2, Date: "2024/03/01", Periods: []string{"period1"}},
		{ID: 3, Date: "2024/03/20", Periods: []string{"period1"}},
	}}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.March})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 3)
	assert.Equal(t, types.DateString("2024/03/20"), resp.Entries[0].Date)
	assert.Equal(t, types.DateString("2024/03/05"), resp.Entries[1].Date)
	assert.Equal(t, types.DateString("2024/03/01"), resp.Entries[2].Date)
}

func TestExecute_SameDateKeepsRepositoryOrder(t *testing.T) {
	// Внутри одной даты сохраняется порядок хранилища (created_at DESC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 9, Date: "2024/03/05", Periods: []string{"period1"}},
		{ID: 4, Date: "2024/03/05", Periods: []string{"period2"}},
	}}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.March})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, int64(9), resp.Entries[0].BookingID)
	assert.Equal(t, int64(4), resp.Entries[1].BookingID)
}

func TestExecute_EmptyMonthIsNotAnError(t *testing.T) {
	uc := newTestUseCase(t, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.January})
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, time.January, resp.Month)
}

func TestExecute_InvalidSelector(t *testing.T) {
	uc := newTestUseCase(t, &fakeBookingRepo{})

	tests := []*Request{
		{Year: 0, Month: time.May},
		{Year: 2025, Month: time.Month(0)},
		{Year: 2025, Month: time.Month(13)},
		{Year: 2025, Month: time.May, ResourceID: ptr.Ptr("")},
	}
	for _, req := range tests {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_StoreFailure(t *testing.T) {
	uc := newTestUseCase(t, &fakeBookingRepo{err: errors.New("connection refused")})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.October})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, resp)
}
