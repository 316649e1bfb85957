package query_history

import (
	"context"

	queryHistory "github.com/campusops/SFR-ReservationService/internal/usecase/query_history"
)

type QueryHistoryUseCase interface {
	Execute(ctx context.Context, req *queryHistory.Request) (*queryHistory.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
