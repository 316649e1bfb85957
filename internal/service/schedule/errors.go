package schedule

import "errors"

var (
	// ErrInvalidSlot возвращается при некорректном токене закрытого слота
	ErrInvalidSlot = errors.New("schedule.service: invalid slot token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
