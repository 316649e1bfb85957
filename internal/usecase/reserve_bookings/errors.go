package reserve_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных:
	// пустой ресурс, пустой список дат, пустой или неизвестный набор периодов.
	// Запрос отклоняется целиком, без обращений к хранилищу.
	ErrInvalidInput = errors.New("reserve_bookings: invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно или
	// операция записи завершилась ошибкой. Конфликт периодов ошибкой
	// не является - это штатный исход конкретной даты.
	ErrStoreUnavailable = errors.New("reserve_bookings: booking store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_bookings: internal error")
)
