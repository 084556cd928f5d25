package schedule

import "github.com/noah-isme/activity-platform-api/internal/models"

// DefaultPageSize is the fixed listing page length.
const DefaultPageSize = 5

// Page is one slice of a paginated sequence together with its metadata.
type Page struct {
	Items      []models.Activity
	Number     int
	Size       int
	Total      int
	TotalPages int
}

// Paginate slices activities into the 1-based page of the given size. A
// non-positive size falls back to DefaultPageSize and a non-positive page
// to 1. A page past the end serves an empty slice rather than clamping;
// callers are expected to disable navigation at the boundaries.
func Paginate(activities []models.Activity, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(activities)
	totalPages := (total + size - 1) / size

	result := Page{
		Items:      []models.Activity{},
		Number:     page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}

	start := (page - 1) * size
	if start >= total {
		return result
	}

	end := start + size
	if end > total {
		end = total
	}

	result.Items = activities[start:end]
	return result
}

// ListState tracks the pager position across successive queries. Whenever
// the filter criteria or sort option differ from the previous call the
// effective page resets to 1, so a stale page number from an earlier
// filter state is never served against a new result set.
type ListState struct {
	filters Filters
	sort    SortOption
	page    int
}

// Resolve returns the effective page for the given query input, recording
// it for the next call.
func (s *ListState) Resolve(f Filters, option SortOption, requested int) int {
	if requested <= 0 {
		requested = 1
	}
	if s.page == 0 || !f.Equal(s.filters) || option != s.sort {
		requested = 1
	}

	s.filters = f
	s.sort = option
	s.page = requested

	return requested
}
