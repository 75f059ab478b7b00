package util

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const DateLayout = "2006-01-02"

// ConversionLookbackDays widens the conversion window behind the report start
// so journeys converting early in the range keep their earlier sessions.
const ConversionLookbackDays = 7

// DefaultReportRangeDays is used when no explicit range is given.
const DefaultReportRangeDays = 30

const maxReportRangeDays = 365

// ValidateDateRange parses an inclusive YYYY-MM-DD range and rejects ranges
// that are inverted, in the future, or longer than a year.
func ValidateDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", startDate)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", endDate)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}
	if end.After(now.EndOfDay()) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is in the future", endDate)
	}
	if end.Sub(start) > maxReportRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("date range exceeds %d days", maxReportRangeDays)
	}

	return start, end, nil
}

// GetDefaultDateRange returns the last DefaultReportRangeDays days ending
// today, as YYYY-MM-DD strings.
func GetDefaultDateRange() (string, string) {
	end := now.BeginningOfDay()
	start := end.AddDate(0, 0, -DefaultReportRangeDays)
	return start.Format(DateLayout), end.Format(DateLayout)
}

// BufferedConversionRange widens a validated report range to the conversion
// query bounds: the lookback buffer before the start, one day after the end.
func BufferedConversionRange(start, end time.Time) (string, string) {
	return start.AddDate(0, 0, -ConversionLookbackDays).Format(DateLayout),
		end.AddDate(0, 0, 1).Format(DateLayout)
}
