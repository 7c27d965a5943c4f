// Package timezone converts WIB calendar dates to UTC epoch bounds and back.
//
// The affiliate dashboard reads everything in Waktu Indonesia Barat (UTC+7).
// The zone is pinned with time.FixedZone rather than the host's tzdata so the
// same request produces the same epoch bounds wherever the process runs.
package timezone

import (
	"fmt"
	"time"
)

// WIB is the fixed local calendar zone for all date handling.
var WIB = time.FixedZone("WIB", 7*60*60)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// TimestampLayout is the display format for epoch fields.
const TimestampLayout = "2006-01-02 15:04:05"

// maxRangeDays is the range length beyond which the upstream API is known to
// reject requests. The fetch still proceeds; the caller only gets a warning.
const maxRangeDays = 90

// ParseDate parses "YYYY-MM-DD" as a WIB calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, WIB)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

// EpochRange converts an inclusive WIB calendar date range into inclusive UTC
// epoch bounds: start 00:00:00 through end 23:59:59 local time.
//
// Dates after today (WIB) are clamped to today, with a warning appended for
// the caller to surface. Ranges longer than 90 days get an advisory warning
// but are not rejected; the upstream API enforces its own limit.
func EpochRange(start, end time.Time) (startTs, endTs int64, warnings []string) {
	return epochRangeAt(start, end, time.Now())
}

func epochRangeAt(start, end time.Time, now time.Time) (int64, int64, []string) {
	var warnings []string

	today := midnight(now.In(WIB))
	start = midnight(start.In(WIB))
	end = midnight(end.In(WIB))

	if start.After(today) {
		warnings = append(warnings, fmt.Sprintf("start date %s is in the future, clamped to %s",
			start.Format(DateLayout), today.Format(DateLayout)))
		start = today
	}
	if end.After(today) {
		warnings = append(warnings, fmt.Sprintf("end date %s is in the future, clamped to %s",
			end.Format(DateLayout), today.Format(DateLayout)))
		end = today
	}

	if days := int(end.Sub(start).Hours()/24) + 1; days > maxRangeDays {
		warnings = append(warnings, fmt.Sprintf("range spans %d days; the upstream API may reject ranges over %d days", days, maxRangeDays))
	}

	startTs := start.Unix()
	endTs := end.Add(24*time.Hour - time.Second).Unix()
	return startTs, endTs, warnings
}

// FormatEpoch renders epoch seconds as "YYYY-MM-DD HH:MM:SS" in WIB.
// Zero or negative input renders as the empty string; this mirrors upstream
// fields that are simply absent until the order reaches a given state.
func FormatEpoch(epoch int64) string {
	if epoch <= 0 {
		return ""
	}
	return time.Unix(epoch, 0).In(WIB).Format(TimestampLayout)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, WIB)
}
