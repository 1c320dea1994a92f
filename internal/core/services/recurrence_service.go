package services

import (
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
)

// recurrenceService implements the recurrence schedule evaluation shared by
// both generators. It is stateless and side-effect free.
type recurrenceService struct{}

// NewRecurrenceService creates a new RecurrenceSvc.
func NewRecurrenceService() portssvc.RecurrenceSvc {
	return &recurrenceService{}
}

var _ portssvc.RecurrenceSvc = (*recurrenceService)(nil)

// NextDueDate computes the next occurrence date for the schedule.
// A schedule that has never generated is due on its start date exactly; no
// frequency step is applied for the first occurrence. Afterwards the last
// generated date is advanced by a single step. Only one step is ever applied,
// so elapsed periods are never skipped forward past the next occurrence.
func (s *recurrenceService) NextDueDate(schedule domain.Schedule) time.Time {
	if schedule.LastGeneratedDate == nil {
		return schedule.StartDate
	}

	last := *schedule.LastGeneratedDate
	switch schedule.Frequency {
	case domain.Weekly:
		return last.AddDate(0, 0, 7)
	case domain.Monthly:
		return addMonthsClamped(last, 1)
	case domain.Quarterly:
		return addMonthsClamped(last, 3)
	case domain.Yearly:
		return addMonthsClamped(last, 12)
	}
	// Unknown frequency: leave the date unchanged. Profile creation validates
	// the frequency, so this only guards rows written outside the API.
	return last
}

// IsDue reports whether the schedule's next occurrence date has arrived.
// Equality counts: a profile whose next due date is today is due today.
func (s *recurrenceService) IsDue(schedule domain.Schedule, today time.Time) bool {
	return !s.NextDueDate(schedule).After(today)
}

// addMonthsClamped adds whole calendar months keeping the day of month,
// clamping to the last day of the target month when the source day does not
// exist there (e.g. Jan 31 + 1 month = Feb 28/29). time.AddDate would roll
// over into the following month instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	// Normalize target year/month via the first of the month, which always exists.
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	targetYear, targetMonth, _ := first.Date()

	if last := daysIn(targetYear, targetMonth); day > last {
		day = last
	}

	h, m, sec := t.Clock()
	return time.Date(targetYear, targetMonth, day, h, m, sec, t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
