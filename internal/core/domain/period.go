package domain

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month used to bound aggregation queries.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CurrentMonth derives the month key from a reference time.
func CurrentMonth(now time.Time) MonthKey {
	return MonthKey{Year: now.Year(), Month: now.Month()}
}

// FirstDay is the first calendar day of the month (UTC midnight).
func (m MonthKey) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// FirstDayOfNextMonth is the exclusive upper bound of the month's date range.
func (m MonthKey) FirstDayOfNextMonth() time.Time {
	return m.FirstDay().AddDate(0, 1, 0)
}

// String renders the month for display, e.g. "January 2026".
func (m MonthKey) String() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

// WeekWindow is a rolling trailing window of calendar days ending at End
// (inclusive). Days is the window length; the canonical weekly view uses 7.
type WeekWindow struct {
	End  time.Time `json:"end"`
	Days int       `json:"days"`
}

// NewTrailingWindow builds a window of n days ending at the calendar day of
// the reference time.
func NewTrailingWindow(end time.Time, n int) WeekWindow {
	return WeekWindow{End: DayOf(end), Days: n}
}

// Start is the first calendar day inside the window.
func (w WeekWindow) Start() time.Time {
	return w.End.AddDate(0, 0, -(w.Days - 1))
}

// Dates lists every calendar day in the window in ascending order.
func (w WeekWindow) Dates() []time.Time {
	out := make([]time.Time, 0, w.Days)
	for i := 0; i < w.Days; i++ {
		out = append(out, w.Start().AddDate(0, 0, i))
	}
	return out
}

// WorkingDayCount counts the Monday-Friday days present in the window.
func (w WeekWindow) WorkingDayCount() int {
	count := 0
	for _, d := range w.Dates() {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// DayOf truncates a time to its calendar day (UTC midnight).
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsWorkingDay reports whether the day is Monday through Friday.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
