package types

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat канонический формат даты бронирования (YYYY/MM/DD)
const DateFormat = "2006/01/02"

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("types: invalid date string, expected YYYY/MM/DD")

// DateString календарная дата в каноническом виде "YYYY/MM/DD".
// Дата трактуется как метка (без часового пояса и времени суток).
// Благодаря ведущим нулям лексикографическое сравнение строк
// совпадает с хронологическим порядком дат.
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что строка является корректной календарной датой
func (d DateString) Validate() error {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	// time.Parse нормализует даты вида 2024/02/30, сверяем обратно
	if t.Format(DateFormat) != string(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Time конвертирует дату в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// Weekday возвращает день недели даты
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// IsBefore проверяет, что дата d раньше other
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter проверяет, что дата d позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// String возвращает каноническое строковое представление
func (d DateString) String() string {
	return string(d)
}

// MonthRange возвращает включительные границы месяца
// [YYYY/MM/01, YYYY/MM/<последний день>] с учетом високосных лет
func MonthRange(year int, month time.Month) (DateString, DateString, error) {
	if year < 1 || month < time.January || month > time.December {
		return "", "", fmt.Errorf("%w: year=%d month=%d", ErrInvalidDateString, year, int(month))
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// День 0 следующего месяца = последний день текущего
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return NewDateString(first), NewDateString(last), nil
}
