package domain

import "time"

// PeriodNameSeparator joins period display names in history entries
const PeriodNameSeparator = "、"

// UnknownBookerLabel is rendered when a booking has no booker name
const UnknownBookerLabel = "未知"

// DefaultPeriods is the built-in period catalog, used when the configuration
// does not define its own. Matches the deployed reservation page.
var DefaultPeriods = []Period{
	{ID: "morning", Name: "晨間/早會", TimeRange: "07:50~08:30", Order: 0},
	{ID: "period1", Name: "第一節", TimeRange: "08:40~09:20", Order: 1},
	{ID: "period2", Name: "第二節", TimeRange: "09:30~10:10", Order: 2},
	{ID: "period3", Name: "第三節", TimeRange: "10:30~11:10", Order: 3},
	{ID: "period4", Name: "第四節", TimeRange: "11:20~12:00", Order: 4},
	{ID: "lunch", Name: "午餐/午休", TimeRange: "12:00~12:40", Order: 5},
	{ID: "period5", Name: "第五節", TimeRange: "13:00~13:40", Order: 6},
	{ID: "period6", Name: "第六節", TimeRange: "13:50~14:30", Order: 7},
	{ID: "period7", Name: "第七節", TimeRange: "14:40~15:20", Order: 8},
	{ID: "period8", Name: "第八節", TimeRange: "15:30~16:10", Order: 9},
}

// weekdayTokens are the short weekday ids used in blocked slot tokens
var weekdayTokens = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// WeekdayToken returns the short token for a weekday ("mon", "tue", ...)
func WeekdayToken(d time.Weekday) string {
	return weekdayTokens[d]
}

// ValidWeekdayToken reports whether the token names a weekday
func ValidWeekdayToken(token string) bool {
	for _, t := range weekdayTokens {
		if t == token {
			return true
		}
	}
	return false
}

// SlotToken builds the blocked slot token for a weekday and period,
// e.g. "mon_period1"
func SlotToken(weekday time.Weekday, periodID string) string {
	return WeekdayToken(weekday) + "_" + periodID
}
