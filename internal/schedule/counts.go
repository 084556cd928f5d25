package schedule

import "github.com/noah-isme/activity-platform-api/internal/models"

// StatusCounts tallies a collection of activities per status. All is the
// total size of the collection, so the four buckets always sum to it for
// well-formed input.
type StatusCounts struct {
	All        int `json:"all"`
	Upcoming   int `json:"upcoming"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

// Incomplete derives the count of activities still requiring work. The
// category is computed on demand and never stored.
func (c StatusCounts) Incomplete() int {
	return c.InProgress + c.Overdue
}

// Due derives the count of activities coming up. Computed on demand.
func (c StatusCounts) Due() int {
	return c.Upcoming
}

// Count tallies the complete, unfiltered collection. Sidebar category
// counts stay stable reference totals while the visible list narrows, so
// callers must not pass a filtered slice here.
func Count(activities []models.Activity) StatusCounts {
	counts := StatusCounts{All: len(activities)}

	for _, activity := range activities {
		switch activity.Status {
		case models.StatusUpcoming:
			counts.Upcoming++
		case models.StatusInProgress:
			counts.InProgress++
		case models.StatusCompleted:
			counts.Completed++
		case models.StatusOverdue:
			counts.Overdue++
		}
	}

	return counts
}
