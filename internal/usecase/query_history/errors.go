package query_history

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном селекторе месяца
	ErrInvalidInput = errors.New("query_history: invalid input data")

	// ErrStoreUnavailable возвращается при ошибке чтения из хранилища
	ErrStoreUnavailable = errors.New("query_history: booking store unavailable")
)
