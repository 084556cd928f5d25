package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/activity-platform-api/internal/models"
)

func TestTypeLabels(t *testing.T) {
	require.Equal(t, "Online Class", TypeLabel(models.TypeOnlineClass))
	require.Equal(t, "Assignment", TypeLabel(models.TypeAssignment))
	require.Equal(t, "Quiz", TypeLabel(models.TypeQuiz))
	require.Equal(t, "Discussion", TypeLabel(models.TypeDiscussion))
}

func TestStatusLabels(t *testing.T) {
	require.Equal(t, "Upcoming", StatusLabel(models.StatusUpcoming))
	require.Equal(t, "In Progress", StatusLabel(models.StatusInProgress))
	require.Equal(t, "Completed", StatusLabel(models.StatusCompleted))
	require.Equal(t, "Overdue", StatusLabel(models.StatusOverdue))
}

func TestStatusColors(t *testing.T) {
	require.Equal(t, "blue", StatusColor(models.StatusUpcoming))
	require.Equal(t, "orange", StatusColor(models.StatusInProgress))
	require.Equal(t, "green", StatusColor(models.StatusCompleted))
	require.Equal(t, "red", StatusColor(models.StatusOverdue))
}

func TestActionLabelJoinNowForLiveClass(t *testing.T) {
	live := true
	activity := models.Activity{
		Status: models.StatusUpcoming,
		Type:   models.TypeOnlineClass,
		IsLive: &live,
	}
	require.Equal(t, "Join Now", ActionLabel(activity))

	notLive := false
	activity.IsLive = &notLive
	require.Equal(t, "Start", ActionLabel(activity))

	activity.IsLive = nil
	require.Equal(t, "Start", ActionLabel(activity))
}

func TestActionLabelIgnoresLiveFlagForOtherTypes(t *testing.T) {
	live := true
	activity := models.Activity{
		Status: models.StatusUpcoming,
		Type:   models.TypeAssignment,
		IsLive: &live,
	}
	require.Equal(t, "Start", ActionLabel(activity))
}

func TestActionLabelPerStatus(t *testing.T) {
	cases := []struct {
		status models.ActivityStatus
		label  string
	}{
		{models.StatusUpcoming, "Start"},
		{models.StatusInProgress, "Continue"},
		{models.StatusCompleted, "Review"},
		{models.StatusOverdue, "Start"},
		{models.ActivityStatus("archived"), "View"},
	}

	for _, tc := range cases {
		activity := models.Activity{Status: tc.status, Type: models.TypeQuiz}
		require.Equal(t, tc.label, ActionLabel(activity), "status %s", tc.status)
	}
}

func TestLabelsForUnknownValuesAreEmpty(t *testing.T) {
	require.Empty(t, TypeLabel(models.ActivityType("seminar")))
	require.Empty(t, StatusLabel(models.ActivityStatus("archived")))
	require.Empty(t, StatusColor(models.ActivityStatus("archived")))
}
