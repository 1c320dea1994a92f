package services

import (
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
)

// RecurrenceSvc decides when recurring profiles fire. It is a pure function of
// the schedule and the supplied date; implementations hold no state.
type RecurrenceSvc interface {
	// NextDueDate computes the next occurrence date for a schedule. When the
	// schedule has never generated, the start date itself is returned with no
	// step applied. Otherwise the last generated date is advanced by exactly
	// one frequency step.
	NextDueDate(schedule domain.Schedule) time.Time

	// IsDue reports whether the schedule's next occurrence date has arrived,
	// i.e. NextDueDate(schedule) <= today.
	IsDue(schedule domain.Schedule, today time.Time) bool
}
