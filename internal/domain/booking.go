package domain

import (
	"time"

	"github.com/campusops/SFR-ReservationService/pkg/types"
)

// Booking represents a committed reservation of a resource for a set of
// periods on a single date.
//
// Invariant: for a fixed (ResourceID, Date), the period sets of all stored
// bookings are pairwise disjoint. The reservation engine enforces this by
// committing check+insert inside one serializable transaction.
type Booking struct {
	ID         int64
	ResourceID string           // opaque resource identifier (e.g. "禮堂")
	Date       types.DateString // calendar date label, YYYY/MM/DD
	Periods    []string         // non-empty set of period ids
	Booker     *string          // requester display name, optional
	Reason     *string          // free-text justification, optional
	CreatedAt  time.Time        // server-assigned, audit ordering only
}

// HasPeriod reports whether the booking claims the given period
func (b *Booking) HasPeriod(periodID string) bool {
	for _, p := range b.Periods {
		if p == periodID {
			return true
		}
	}
	return false
}

// BookerName returns the booker display name with the unknown fallback
func (b *Booking) BookerName() string {
	if b.Booker == nil || *b.Booker == "" {
		return UnknownBookerLabel
	}
	return *b.Booker
}

// HistoryFilter filters bookings by inclusive date range and,
// optionally, by resource
type HistoryFilter struct {
	ResourceID *string          // nil = all resources
	StartDate  types.DateString // inclusive
	EndDate    types.DateString // inclusive
}
