// Package plan maps Fourthwall plan identifiers to tier names and computes
// renewal dates from billing intervals.
package plan

import "time"

// FreeTier is the fallback tier for unknown plan identifiers and for members
// with no paid subscription.
const FreeTier = "Free"

// Billing interval values as sent by the commerce platform.
const (
	IntervalMonthly = "MONTHLY"
	IntervalYearly  = "YEARLY"
)

// tierNames maps Fourthwall membership tier IDs to plan names.
var tierNames = map[string]string{
	"mt_28243": "Pro",
	"mt_28247": "Elite",
}

// ResolveTier returns the plan name for a Fourthwall tier ID.
// Unknown or empty IDs resolve to FreeTier.
func ResolveTier(tierID string) string {
	if name, ok := tierNames[tierID]; ok {
		return name
	}
	return FreeTier
}

// RenewalDate computes the estimated next renewal from a billing interval,
// truncated to a UTC calendar date. Day-of-month overflow follows time.AddDate
// rollover (Jan 31 + 1 month = Mar 2/3). Unrecognized intervals return the
// anchor unchanged: an unknown interval means the cadence is unknown, so we
// do not guess.
func RenewalDate(anchor time.Time, interval string) time.Time {
	d := anchor.UTC()
	switch interval {
	case IntervalMonthly:
		d = d.AddDate(0, 1, 0)
	case IntervalYearly:
		d = d.AddDate(1, 0, 0)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a renewal date the way it is stored and returned to
// clients (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
