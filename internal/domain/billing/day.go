package billing

import (
	"time"

	"lounge-billing/internal/domain/pricing"
)

// DayClassifier decides weekday/weekend pricing in a tenant's civil calendar.
type DayClassifier struct {
	location *time.Location
}

func NewDayClassifier(loc *time.Location) DayClassifier {
	if loc == nil {
		loc = time.UTC
	}
	return DayClassifier{location: loc}
}

// Classify must be given the billing instant, not the session start: a session
// that starts Friday night and is billed Saturday is priced as weekend.
func (d DayClassifier) Classify(instant time.Time) pricing.DayType {
	switch instant.In(d.location).Weekday() {
	case time.Saturday, time.Sunday:
		return pricing.Weekend
	default:
		return pricing.Weekday
	}
}
