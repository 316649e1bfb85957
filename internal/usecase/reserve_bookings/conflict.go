package reserve_bookings

import (
	"github.com/campusops/SFR-ReservationService/internal/domain"
)

// conflictingPeriods возвращает периоды из requested, уже занятые
// существующими бронированиями. Пустой результат означает, что слот
// свободен. Результат сохраняет порядок requested, без дубликатов.
//
// Положительный ответ "свободно" вне транзакции - лишь наблюдение на момент
// чтения; гарантия отсутствия двойного бронирования обеспечивается тем, что
// usecase вызывает эту проверку и вставку в одной сериализуемой транзакции.
func conflictingPeriods(requested []string, existing []*domain.Booking) []string {
	taken := make(map[string]struct{})
	for _, b := range existing {
		for _, p := range b.Periods {
			taken[p] = struct{}{}
		}
	}

	conflicts := make([]string, 0)
	for _, p := range requested {
		if _, ok := taken[p]; ok {
			conflicts = append(conflicts, p)
		}
	}
	return conflicts
}
