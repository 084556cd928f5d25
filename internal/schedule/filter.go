package schedule

import (
	"strings"
	"time"

	"github.com/noah-isme/activity-platform-api/internal/models"
)

// Query wildcards and synthetic status categories. These belong to the
// filter layer only; an activity itself never holds them.
const (
	// All matches every type or status.
	All = "all"
	// Incomplete matches activities that are in progress or overdue.
	Incomplete = "incomplete"
)

// Filters describes an activity query. Empty fields impose no constraint.
type Filters struct {
	// Type narrows to a single activity type; empty or All matches any.
	Type string
	// Status narrows to a concrete status, or the synthetic Incomplete
	// category; empty or All matches any.
	Status string
	// Search is matched case-insensitively as a substring against the
	// title, course name and program name; any one match qualifies.
	Search string
	// DateFrom and DateTo bound the scheduled date, inclusive on both ends.
	DateFrom *time.Time
	DateTo   *time.Time
}

// Equal reports whether two filter sets describe the same query.
func (f Filters) Equal(other Filters) bool {
	return f.Type == other.Type &&
		f.Status == other.Status &&
		f.Search == other.Search &&
		datesEqual(f.DateFrom, other.DateFrom) &&
		datesEqual(f.DateTo, other.DateTo)
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Filter returns the activities satisfying every constraint in f. The
// result preserves the input order and never duplicates elements; the
// input slice is left untouched.
func Filter(activities []models.Activity, f Filters) []models.Activity {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if matches(activity, f, search) {
			filtered = append(filtered, activity)
		}
	}

	return filtered
}

func matches(a models.Activity, f Filters, search string) bool {
	if f.Type != "" && f.Type != All && string(a.Type) != f.Type {
		return false
	}

	if f.Status != "" && f.Status != All {
		if f.Status == Incomplete {
			if a.Status != models.StatusInProgress && a.Status != models.StatusOverdue {
				return false
			}
		} else if string(a.Status) != f.Status {
			return false
		}
	}

	if search != "" {
		if !strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.CourseName), search) &&
			!strings.Contains(strings.ToLower(a.ProgramName), search) {
			return false
		}
	}

	if f.DateFrom != nil && a.ScheduledDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && a.ScheduledDate.After(*f.DateTo) {
		return false
	}

	return true
}
