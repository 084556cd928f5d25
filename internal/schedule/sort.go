package schedule

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/activity-platform-api/internal/models"
)

// SortOption selects the ordering applied to a listing.
type SortOption string

// Supported sort options.
const (
	SortDateAsc   SortOption = "date-asc"
	SortDateDesc  SortOption = "date-desc"
	SortTitleAsc  SortOption = "title-asc"
	SortTitleDesc SortOption = "title-desc"
)

// Sort returns a new slice ordered by the given option. The sort is stable,
// so ties keep the relative order of the input. An unrecognized option
// returns the copy in input order; the input itself is never mutated.
func Sort(activities []models.Activity, option SortOption) []models.Activity {
	sorted := make([]models.Activity, len(activities))
	copy(sorted, activities)

	switch option {
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ScheduledDate.Before(sorted[j].ScheduledDate)
		})
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ScheduledDate.After(sorted[j].ScheduledDate)
		})
	case SortTitleAsc:
		collator := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case SortTitleDesc:
		collator := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Title, sorted[j].Title) > 0
		})
	}

	return sorted
}
