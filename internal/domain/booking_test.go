package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/SFR-ReservationService/pkg/ptr"
)

func TestBooking_BookerName(t *testing.T) {
	b := &Booking{Booker: ptr.Ptr("王老師")}
	assert.Equal(t, "王老師", b.BookerName())

	assert.Equal(t, UnknownBookerLabel, (&Booking{}).BookerName())
	assert.Equal(t, UnknownBookerLabel, (&Booking{Booker: ptr.Ptr("")}).BookerName())
}

func TestBooking_HasPeriod(t *testing.T) {
	b := &Booking{Periods: []string{"period1", "lunch"}}

	assert.True(t, b.HasPeriod("period1"))
	assert.True(t, b.HasPeriod("lunch"))
	assert.False(t, b.HasPeriod("period2"))
}

func TestResourceSchedule_IsClosed(t *testing.T) {
	s := &ResourceSchedule{ClosedSlots: []string{"mon_period1", "fri_lunch"}}

	assert.True(t, s.IsClosed(time.Monday, "period1"))
	assert.True(t, s.IsClosed(time.Friday, "lunch"))
	assert.False(t, s.IsClosed(time.Tuesday, "period1"))
	assert.False(t, s.IsClosed(time.Monday, "period2"))
}

func TestResourceSchedule_ClosedPeriodsOn(t *testing.T) {
	s := &ResourceSchedule{ClosedSlots: []string{"wed_period1", "wed_period3"}}

	// 2025/10/15 - среда
	closed, err := s.ClosedPeriodsOn("2025/10/15", []string{"period1", "period2", "period3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"period1", "period3"}, closed)

	// 2025/10/16 - четверг, слоты не закрыты
	closed, err = s.ClosedPeriodsOn("2025/10/16", []string{"period1", "period3"})
	require.NoError(t, err)
	assert.Empty(t, closed)

	_, err = s.ClosedPeriodsOn("not-a-date", []string{"period1"})
	assert.Error(t, err)
}

func TestSlotToken(t *testing.T) {
	assert.Equal(t, "mon_period1", SlotToken(time.Monday, "period1"))
	assert.Equal(t, "sun_lunch", SlotToken(time.Sunday, "lunch"))

	assert.True(t, ValidWeekdayToken("mon"))
	assert.True(t, ValidWeekdayToken("sat"))
	assert.False(t, ValidWeekdayToken("monday"))
	assert.False(t, ValidWeekdayToken(""))
}
