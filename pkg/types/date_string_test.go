package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	valid := []string{
		"2025/10/15",
		"2024/02/29", // високосный год
		"2000/02/29", // 2000 делится на 400
		"2025/01/01",
		"2025/12/31",
	}
	for _, s := range valid {
		assert.NoError(t, DateString(s).Validate(), s)
	}

	invalid := []string{
		"",
		"2025-10-15",
		"2025/10/5",
		"25/10/15",
		"2025/13/01",
		"2025/00/10",
		"2024/02/30",
		"2023/02/29", // не високосный
		"2025/10/15T00:00:00",
		"not a date",
	}
	for _, s := range invalid {
		assert.Error(t, DateString(s).Validate(), s)
	}
}

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2025/10/15")
	require.NoError(t, err)
	assert.Equal(t, "2025/10/15", d.String())

	_, err = NewDateStringFromString("2025/2/5")
	assert.ErrorIs(t, err, ErrInvalidDateString)
}

func TestDateString_Ordering(t *testing.T) {
	// Лексикографический порядок совпадает с хронологическим
	a := DateString("2025/09/30")
	b := DateString("2025/10/01")
	c := DateString("2026/01/01")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsBefore(c))
	assert.True(t, c.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestDateString_Weekday(t *testing.T) {
	wd, err := DateString("2025/10/15").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, wd)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		first string
		last  string
	}{
		{2025, time.October, "2025/10/01", "2025/10/31"},
		{2025, time.February, "2025/02/01", "2025/02/28"},
		{2024, time.February, "2024/02/01", "2024/02/29"}, // високосный
		{2000, time.February, "2000/02/01", "2000/02/29"}, // делится на 400
		{1900, time.February, "1900/02/01", "1900/02/28"}, // делится на 100, но не на 400
		{2025, time.April, "2025/04/01", "2025/04/30"},
		{2025, time.December, "2025/12/01", "2025/12/31"},
	}

	for _, tt := range tests {
		first, last, err := MonthRange(tt.year, tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.first, first.String())
		assert.Equal(t, tt.last, last.String())
	}
}

func TestMonthRange_Invalid(t *testing.T) {
	_, _, err := MonthRange(0, time.January)
	assert.Error(t, err)

	_, _, err = MonthRange(2025, time.Month(0))
	assert.Error(t, err)

	_, _, err = MonthRange(2025, time.Month(13))
	assert.Error(t, err)
}
