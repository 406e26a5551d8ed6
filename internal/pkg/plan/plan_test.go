package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveTier_KnownIDs(t *testing.T) {
	assert.Equal(t, "Pro", ResolveTier("mt_28243"))
	assert.Equal(t, "Elite", ResolveTier("mt_28247"))
}

func TestResolveTier_UnknownID_FallsBackToFree(t *testing.T) {
	assert.Equal(t, FreeTier, ResolveTier("mt_99999"))
	assert.Equal(t, FreeTier, ResolveTier(""))
}

func TestRenewalDate_Monthly(t *testing.T) {
	anchor := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
	got := RenewalDate(anchor, IntervalMonthly)
	assert.Equal(t, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestRenewalDate_Monthly_EndOfMonthRollover(t *testing.T) {
	anchor := time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC)
	got := RenewalDate(anchor, IntervalMonthly)
	// AddDate normalizes Feb 31 to Mar 3 in a non-leap year.
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestRenewalDate_Yearly(t *testing.T) {
	anchor := time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC)
	got := RenewalDate(anchor, IntervalYearly)
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRenewalDate_UnknownInterval_PassesAnchorThrough(t *testing.T) {
	anchor := time.Date(2025, time.May, 10, 8, 15, 0, 0, time.UTC)
	got := RenewalDate(anchor, "WEEKLY")
	assert.Equal(t, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestRenewalDate_TruncatesTimeOfDay(t *testing.T) {
	anchor := time.Date(2025, time.May, 10, 23, 45, 12, 999, time.UTC)
	got := RenewalDate(anchor, IntervalMonthly)
	assert.Zero(t, got.Hour())
	assert.Zero(t, got.Minute())
	assert.Zero(t, got.Second())
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.December, 3, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-12-03", FormatDate(d))
}
