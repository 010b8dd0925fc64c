package services

import (
	"fmt"
	"time"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

// DashboardWindows holds the four half-open [Start, End) ranges summed by
// the dashboard.
type DashboardWindows struct {
	Today         models.DateRange
	Yesterday     models.DateRange
	MonthToDate   models.DateRange
	PreviousMonth models.DateRange
}

// WindowsAt anchors the dashboard windows on now's calendar date in loc.
func WindowsAt(now time.Time, loc *time.Location) DashboardWindows {
	if loc == nil {
		loc = time.UTC
	}
	today := StartOfDay(now, loc)
	tomorrow := today.AddDate(0, 0, 1)
	month := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)

	return DashboardWindows{
		Today:         models.DateRange{Start: today, End: tomorrow},
		Yesterday:     models.DateRange{Start: today.AddDate(0, 0, -1), End: today},
		MonthToDate:   models.DateRange{Start: month, End: tomorrow},
		PreviousMonth: models.DateRange{Start: month.AddDate(0, -1, 0), End: month},
	}
}

// StartOfDay truncates t to midnight of its calendar date in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ValidateRange rejects a report range whose start is after its end.
// start == end is a valid single-instant range.
func ValidateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%s > %s: %w", start.Format(time.RFC3339), end.Format(time.RFC3339), domain.ErrInvalidDateRange)
	}
	return nil
}
