package schedule

import "github.com/noah-isme/activity-platform-api/internal/models"

var typeLabels = map[models.ActivityType]string{
	models.TypeOnlineClass: "Online Class",
	models.TypeAssignment:  "Assignment",
	models.TypeQuiz:        "Quiz",
	models.TypeDiscussion:  "Discussion",
}

var statusLabels = map[models.ActivityStatus]string{
	models.StatusUpcoming:   "Upcoming",
	models.StatusInProgress: "In Progress",
	models.StatusCompleted:  "Completed",
	models.StatusOverdue:    "Overdue",
}

var statusColors = map[models.ActivityStatus]string{
	models.StatusUpcoming:   "blue",
	models.StatusInProgress: "orange",
	models.StatusCompleted:  "green",
	models.StatusOverdue:    "red",
}

// TypeLabel returns the display label for an activity type.
func TypeLabel(t models.ActivityType) string {
	return typeLabels[t]
}

// StatusLabel returns the display label for an activity status.
func StatusLabel(s models.ActivityStatus) string {
	return statusLabels[s]
}

// StatusColor returns the color token associated with an activity status.
func StatusColor(s models.ActivityStatus) string {
	return statusColors[s]
}

// ActionLabel resolves the call-to-action button label for an activity.
// Live online classes invite the learner to join immediately; any status
// outside the known enumeration falls back to a neutral "View".
func ActionLabel(a models.Activity) string {
	switch a.Status {
	case models.StatusUpcoming:
		if a.Live() {
			return "Join Now"
		}
		return "Start"
	case models.StatusInProgress:
		return "Continue"
	case models.StatusCompleted:
		return "Review"
	case models.StatusOverdue:
		return "Start"
	default:
		return "View"
	}
}
