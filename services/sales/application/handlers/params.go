package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

const defaultLimit = 10

var errInvalidID = errors.New("id must be a positive integer")

// pathID reads the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryLimit reads ?limit=, defaulting to 10 and capping at 100. Values
// below 1 are passed through so the service rejects them.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit %q: %w", raw, domain.ErrInvalidLimit)
	}
	return min(n, models.MaxReportLimit), nil
}

// queryPage reads ?page=, 1-based. Missing or invalid values mean page 1.
func queryPage(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// queryRange reads startDate and endDate. Each accepts RFC 3339 or a bare
// YYYY-MM-DD day in loc; a bare end day covers that whole day.
func queryRange(r *http.Request, loc *time.Location) (time.Time, time.Time, error) {
	q := r.URL.Query()
	start, _, err := parseDate("startDate", q.Get("startDate"), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, bareDay, err := parseDate("endDate", q.Get("endDate"), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if bareDay {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end, nil
}

func parseDate(name, raw string, loc *time.Location) (time.Time, bool, error) {
	if raw == "" {
		return time.Time{}, false, fmt.Errorf("%s is required", name)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%s must be RFC 3339 or YYYY-MM-DD", name)
	}
	return t, true, nil
}

func totalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
