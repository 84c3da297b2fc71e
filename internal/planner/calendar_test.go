package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestISODate_RoundTrip(t *testing.T) {
	d, err := ParseISODate("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", ISODate(d))
}

func TestParseISODate_Malformed(t *testing.T) {
	_, err := ParseISODate("05/01/2026")
	assert.Error(t, err)
}

func TestStartOfWeekMonday(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday maps to itself", "2026-01-05", "2026-01-05"},
		{"wednesday maps back", "2026-01-07", "2026-01-05"},
		{"saturday maps back", "2026-01-10", "2026-01-05"},
		{"sunday maps back to same week's monday", "2026-01-11", "2026-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ISODate(StartOfWeekMonday(date(tt.in))))
		})
	}
}

func TestAddDays_Signed(t *testing.T) {
	d := date("2026-01-05")
	assert.Equal(t, "2026-01-08", ISODate(AddDays(d, 3)))
	assert.Equal(t, "2025-12-31", ISODate(AddDays(d, -5)))
}

func TestUpcomingSaturday(t *testing.T) {
	// 2026-01-10 is a Saturday.
	assert.Equal(t, "2026-01-10", ISODate(UpcomingSaturday(date("2026-01-10"))), "saturday returns itself")
	assert.Equal(t, "2026-01-10", ISODate(UpcomingSaturday(date("2026-01-05"))), "monday finds the coming saturday")
	assert.Equal(t, "2026-01-17", ISODate(UpcomingSaturday(date("2026-01-11"))), "sunday finds next week's saturday")
}

func TestNextWeekdayAfter_StrictlyAfter(t *testing.T) {
	mon := date("2026-01-05")
	assert.Equal(t, "2026-01-12", ISODate(NextWeekdayAfter(mon, time.Monday)), "next monday on a monday is a week out")
	assert.Equal(t, "2026-01-06", ISODate(NextWeekdayAfter(mon, time.Tuesday)))
	assert.Equal(t, "2026-01-11", ISODate(NextWeekdayAfter(mon, time.Sunday)))
}

func TestDate_TruncatesClock(t *testing.T) {
	at := time.Date(2026, 1, 5, 23, 45, 12, 0, time.UTC)
	assert.Equal(t, "2026-01-05", ISODate(Date(at)))
	assert.True(t, SameDay(at, date("2026-01-05")))
}
