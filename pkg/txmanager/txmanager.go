package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/campusops/SFR-ReservationService/pkg/dbmetrics"
)

// maxRetries число повторов транзакции при serialization failure
const maxRetries = 3

// pgSerializationFailure код ошибки PostgreSQL "could not serialize access"
const pgSerializationFailure = "40001"

// ErrTxBegin возвращается при ошибке открытия транзакции
var ErrTxBegin = errors.New("txmanager: failed to begin transaction")

// ErrTxCommit возвращается при ошибке фиксации транзакции
var ErrTxCommit = errors.New("txmanager: failed to commit transaction")

// TxBeginner источник транзакций (обычно *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в сериализуемых транзакциях
// с повтором при конфликтах сериализации
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает transaction manager
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции уровня SERIALIZABLE.
// Транзакция передается fn через контекст (dbmetrics.WithTx); репозитории
// достают её через dbmetrics.GetExecutor. При serialization failure (40001)
// транзакция повторяется целиком, до maxRetries раз.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("txmanager: retries exhausted: %w", lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTxBegin, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if isSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrTxCommit, err)
	}

	return nil
}

// isSerializationFailure распознает конфликт сериализации PostgreSQL
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure
	}
	return false
}
