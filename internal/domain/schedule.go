package domain

import (
	"time"

	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// ResourceSchedule holds the fixed blocked slots of a resource: weekday and
// period combinations that are never open for booking, stored as slot
// tokens like "mon_period1".
type ResourceSchedule struct {
	ResourceID  string
	ClosedSlots []string
	UpdatedAt   time.Time
}

// IsClosed reports whether the given weekday/period combination is blocked
func (s *ResourceSchedule) IsClosed(weekday time.Weekday, periodID string) bool {
	token := SlotToken(weekday, periodID)
	for _, slot := range s.ClosedSlots {
		if slot == token {
			return true
		}
	}
	return false
}

// ClosedPeriodsOn returns the requested period ids that are blocked on the
// weekday of the given date
func (s *ResourceSchedule) ClosedPeriodsOn(date types.DateString, periodIDs []string) ([]string, error) {
	weekday, err := date.Weekday()
	if err != nil {
		return nil, err
	}

	closed := make([]string, 0)
	for _, id := range periodIDs {
		if s.IsClosed(weekday, id) {
			closed = append(closed, id)
		}
	}
	return closed, nil
}
