package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/campusops/SFR-ReservationService/internal/domain"
	"github.com/campusops/SFR-ReservationService/pkg/dbmetrics"
	"github.com/campusops/SFR-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий расписаний ресурсов (фиксированные закрытые слоты)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByResource получает расписание ресурса.
// Если расписание не сохранялось, возвращает ErrScheduleNotFound;
// вызывающая сторона трактует это как "закрытых слотов нет".
func (r *Repository) GetByResource(ctx context.Context, resourceID string) (*domain.ResourceSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"resource_id",
		"closed_slots",
		"updated_at",
	).
		From("resource_schedules").
		Where(squirrel.Eq{"resource_id": resourceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - build select query: %v", ErrBuildQuery, err)
	}

	var sched domain.ResourceSchedule
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ResourceID,
		pq.Array(&sched.ClosedSlots),
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - scan schedule: %v", ErrScanRow, err)
	}

	sched.UpdatedAt = updatedAt.Time

	return &sched, nil
}

// Upsert сохраняет расписание ресурса, заменяя существующее
func (r *Repository) Upsert(ctx context.Context, resourceID string, closedSlots []string) (*domain.ResourceSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resource_schedules").
		Columns("resource_id", "closed_slots", "updated_at").
		Values(resourceID, pq.Array(closedSlots), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (resource_id) DO UPDATE SET closed_slots = EXCLUDED.closed_slots, updated_at = NOW()").
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return &domain.ResourceSchedule{
		ResourceID:  resourceID,
		ClosedSlots: closedSlots,
		UpdatedAt:   updatedAt.Time,
	}, nil
}
