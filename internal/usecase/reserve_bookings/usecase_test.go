package reserve_bookings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	scheduleRepo "github.com/campusops/SFR-ReservationService/internal/infra/storage/schedule"
	"github.com/campusops/SFR-ReservationService/pkg/ptr"
	"github.com/campusops/SFR-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeBookingRepo хранит бронирования в памяти с ключом (resource, date)
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[string][]*domain.Booking

	createErr  error
	getErr     error
	onCreate   func(b *domain.Booking)
	createCnt  int
	getCallCnt int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		nextID:   1,
		bookings: make(map[string][]*domain.Booking),
	}
}

func key(resourceID string, date types.DateString) string {
	return resourceID + "|" + date.String()
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCnt++
	if f.createErr != nil {
		return nil, f.createErr
	}

	stored := *b
	stored.ID = f.nextID
	f.nextID++
	f.bookings[key(b.ResourceID, b.Date)] = append(f.bookings[key(b.ResourceID, b.Date)], &stored)

	if f.onCreate != nil {
		f.onCreate(&stored)
	}
	return &stored, nil
}

func (f *fakeBookingRepo) GetByResourceAndDate(ctx context.Context, resourceID string, date types.DateString) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCallCnt++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.bookings[key(resourceID, date)], nil
}

// fakeScheduleRepo отдает одно расписание либо "не найдено"
type fakeScheduleRepo struct {
	schedule *domain.ResourceSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByResource(ctx context.Context, resourceID string) (*domain.ResourceSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.schedule == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

// fakeTxManager выполняет fn под мьютексом: последовательная семантика
// сериализуемых транзакций для конкурентных тестов
type fakeTxManager struct {
	mu  sync.Mutex
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

func newTestUseCase(t *testing.T, repo *fakeBookingRepo, sched *fakeScheduleRepo) *UseCase {
	t.Helper()
	catalog, err := domain.NewPeriodCatalog(domain.DefaultPeriods)
	require.NoError(t, err)
	return NewUseCase(repo, sched, &fakeTxManager{}, catalog, nopLogger{})
}

func TestExecute_SingleDateCommitted(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15"},
		Periods:    []string{"period1", "period2"},
		Booker:     ptr.Ptr("王老師"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.Committed)
	assert.Equal(t, 0, resp.Rejected)
	assert.Equal(t, DateStatusCommitted, resp.Results[0].Status)
	require.NotNil(t, resp.Results[0].BookingID)
	assert.Equal(t, int64(1), *resp.Results[0].BookingID)
}

func TestExecute_ValidationFailsWithoutStoreAccess(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"empty resource", &Request{Dates: []types.DateString{"2025/10/15"}, Periods: []string{"period1"}}},
		{"no dates", &Request{ResourceID: "禮堂", Periods: []string{"period1"}}},
		{"bad date", &Request{ResourceID: "禮堂", Dates: []types.DateString{"2025/2/5"}, Periods: []string{"period1"}}},
		{"impossible date", &Request{ResourceID: "禮堂", Dates: []types.DateString{"2025/02/30"}, Periods: []string{"period1"}}},
		{"no periods", &Request{ResourceID: "禮堂", Dates: []types.DateString{"2025/10/15"}}},
		{"unknown period", &Request{ResourceID: "禮堂", Dates: []types.DateString{"2025/10/15"}, Periods: []string{"period99"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

			resp, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
			assert.Zero(t, repo.createCnt, "validation must reject before any store write")
			assert.Zero(t, repo.getCallCnt)
		})
	}
}

func TestExecute_ConflictRejectsOnlyThatDate(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	// Занимаем period2 на первую дату
	_, err := repo.Create(context.Background(), &domain.Booking{
		ResourceID: "禮堂",
		Date:       "2025/10/15",
		Periods:    []string{"period2", "period3"},
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15", "2025/10/16"},
		Periods:    []string{"period1", "period2"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Committed)
	assert.Equal(t, 1, resp.Rejected)

	rejected := resp.Results[0]
	assert.Equal(t, types.DateString("2025/10/15"), rejected.Date)
	assert.Equal(t, DateStatusRejected, rejected.Status)
	assert.Equal(t, RejectReasonConflict, rejected.Reason)
	assert.Equal(t, []string{"period2"}, rejected.BlockedPeriods)
	assert.Nil(t, rejected.BookingID)

	committed := resp.Results[1]
	assert.Equal(t, types.DateString("2025/10/16"), committed.Date)
	assert.Equal(t, DateStatusCommitted, committed.Status)
}

func TestExecute_RejectionLeavesStoreUntouched(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	_, err := repo.Create(context.Background(), &domain.Booking{
		ResourceID: "禮堂",
		Date:       "2025/10/15",
		Periods:    []string{"period1"},
	})
	require.NoError(t, err)
	before := repo.createCnt

	req := &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15"},
		Periods:    []string{"period1"},
	}

	// Повтор того же конфликтующего запроса дает тот же исход
	for i := 0; i < 3; i++ {
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Rejected)
		assert.Equal(t, DateStatusRejected, resp.Results[0].Status)
	}
	assert.Equal(t, before, repo.createCnt, "rejected dates must not write")
}

func TestExecute_DuplicateDatesAreIndependentAttempts(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15", "2025/10/15"},
		Periods:    []string{"period1"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Committed)
	assert.Equal(t, 1, resp.Rejected)
	// Вторая попытка видит вставку первой
	assert.Equal(t, DateStatusCommitted, resp.Results[0].Status)
	assert.Equal(t, DateStatusRejected, resp.Results[1].Status)
	assert.Equal(t, RejectReasonConflict, resp.Results[1].Reason)
}

func TestExecute_DatesProcessedInChronologicalOrder(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/20", "2025/10/15", "2025/10/17"},
		Periods:    []string{"period1"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 3)
	assert.Equal(t, types.DateString("2025/10/15"), resp.Results[0].Date)
	assert.Equal(t, types.DateString("2025/10/17"), resp.Results[1].Date)
	assert.Equal(t, types.DateString("2025/10/20"), resp.Results[2].Date)
}

func TestExecute_DuplicatePeriodsNormalized(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15"},
		Periods:    []string{"period1", "period1", "period2"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Committed)

	stored := repo.bookings[key("禮堂", "2025/10/15")]
	require.Len(t, stored, 1)
	assert.Equal(t, []string{"period1", "period2"}, stored[0].Periods)
}

func TestExecute_ClosedSlotRejectsDate(t *testing.T) {
	repo := newFakeBookingRepo()
	sched := &fakeScheduleRepo{schedule: &domain.ResourceSchedule{
		ResourceID:  "禮堂",
		ClosedSlots: []string{"wed_period1"},
	}}
	uc := newTestUseCase(t, repo, sched)

	// 2025/10/15 - среда (закрыт period1), 2025/10/16 - четверг
	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15", "2025/10/16"},
		Periods:    []string{"period1", "period2"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, DateStatusRejected, resp.Results[0].Status)
	assert.Equal(t, RejectReasonClosed, resp.Results[0].Reason)
	assert.Equal(t, []string{"period1"}, resp.Results[0].BlockedPeriods)
	assert.Equal(t, DateStatusCommitted, resp.Results[1].Status)
	assert.Equal(t, 1, repo.createCnt, "closed date must not reach the store")
}

func TestExecute_MissingScheduleMeansNoClosedSlots(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{}) // всегда ErrScheduleNotFound

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "新教室",
		Dates:      []types.DateString{"2025/10/15"},
		Periods:    []string{"period1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Committed)
}

func TestExecute_StoreFailureReturnsPartialResults(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	// Первая дата проходит, затем хранилище начинает отказывать
	repo.onCreate = func(b *domain.Booking) {
		repo.getErr = errors.New("connection reset")
	}

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15", "2025/10/16", "2025/10/17"},
		Periods:    []string{"period1"},
	})

	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.NotNil(t, resp, "already determined outcomes must be reported")
	require.Len(t, resp.Results, 1)
	assert.Equal(t, DateStatusCommitted, resp.Results[0].Status)
	assert.Equal(t, types.DateString("2025/10/15"), resp.Results[0].Date)
}

func TestExecute_ScheduleLoadFailure(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{err: errors.New("timeout")})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15"},
		Periods:    []string{"period1"},
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, resp)
	assert.Zero(t, repo.createCnt)
}

func TestExecute_CancellationKeepsCommittedDates(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(t, repo, &fakeScheduleRepo{})

	ctx, cancel := context.WithCancel(context.Background())
	// Отменяем после первой успешной вставки
	repo.onCreate = func(b *domain.Booking) { cancel() }

	resp, err := uc.Execute(ctx, &Request{
		ResourceID: "禮堂",
		Dates:      []types.DateString{"2025/10/15", "2025/10/16", "2025/10/17"},
		Periods:    []string{"period1"},
	})

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, resp)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, DateStatusCommitted, resp.Results[0].Status)
	assert.Equal(t, 1, repo.createCnt, "unattempted dates must not be scheduled")
}

func TestExecute_ConcurrentRequestsNeverDoubleBook(t *testing.T) {
	repo := newFakeBookingRepo()
	catalog, err := domain.NewPeriodCatalog(domain.DefaultPeriods)
	require.NoError(t, err)

	// Общий tx manager: его мьютекс моделирует сериализуемые транзакции
	txMgr := &fakeTxManager{}
	uc := NewUseCase(repo, &fakeScheduleRepo{}, txMgr, catalog, nopLogger{})

	const workers = 16
	committed := make([]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resp, err := uc.Execute(context.Background(), &Request{
				ResourceID: "禮堂",
				Dates:      []types.DateString{"2025/10/15"},
				Periods:    []string{"period1"},
			})
			if err == nil {
				committed[n] = resp.Committed
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, c := range committed {
		total += c
	}
	assert.Equal(t, 1, total, "exactly one concurrent request may win the slot")
	assert.Len(t, repo.bookings[key("禮堂", "2025/10/15")], 1)
}

func TestConflictingPeriods(t *testing.T) {
	existing := []*domain.Booking{
		{Periods: []string{"period1", "period2"}},
		{Periods: []string{"lunch"}},
	}

	assert.Equal(t, []string{"period2", "lunch"},
		conflictingPeriods([]string{"period3", "period2", "lunch"}, existing))
	assert.Empty(t, conflictingPeriods([]string{"period4"}, existing))
	assert.Empty(t, conflictingPeriods([]string{"period1"}, nil))
}
