package models

import "time"

// ActivityType enumerates the kinds of scheduled learning activities.
type ActivityType string

// Activity types.
const (
	TypeOnlineClass ActivityType = "online-class"
	TypeAssignment  ActivityType = "assignment"
	TypeQuiz        ActivityType = "quiz"
	TypeDiscussion  ActivityType = "discussion"
)

// Valid reports whether the type belongs to the closed enumeration.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeOnlineClass, TypeAssignment, TypeQuiz, TypeDiscussion:
		return true
	}
	return false
}

// ActivityStatus enumerates the lifecycle states an activity can hold.
// Exactly one status applies to an activity at any time.
type ActivityStatus string

// Activity statuses.
const (
	StatusUpcoming   ActivityStatus = "upcoming"
	StatusInProgress ActivityStatus = "in-progress"
	StatusCompleted  ActivityStatus = "completed"
	StatusOverdue    ActivityStatus = "overdue"
)

// Valid reports whether the status belongs to the closed enumeration.
func (s ActivityStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// Activity represents a scheduled learning item (class, assignment, quiz
// or discussion) supplied whole by the upstream data source.
type Activity struct {
	ID              string         `gorm:"primaryKey;size:64" json:"id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	CourseName      string         `gorm:"size:255;not null" json:"course_name"`
	ProgramName     string         `gorm:"size:255;not null" json:"program_name"`
	Type            ActivityType   `gorm:"size:32;not null;index" json:"type"`
	Status          ActivityStatus `gorm:"size:32;not null;index" json:"status"`
	ScheduledDate   time.Time      `gorm:"not null;index" json:"scheduled_date"`
	ScheduledTime   string         `gorm:"size:5" json:"scheduled_time,omitempty"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	Progress        *int           `json:"progress,omitempty"`
	DueDate         *time.Time     `json:"due_date,omitempty"`
	MaxScore        *float64       `json:"max_score,omitempty"`
	Score           *float64       `json:"score,omitempty"`
	IsLive          *bool          `json:"is_live,omitempty"`
	RecordingURL    string         `gorm:"size:512" json:"recording_url,omitempty"`
	MeetingLink     string         `gorm:"size:512" json:"meeting_link,omitempty"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	Instructor      string         `gorm:"size:255" json:"instructor,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Live reports whether the activity is an online class currently streaming.
func (a Activity) Live() bool {
	return a.Type == TypeOnlineClass && a.IsLive != nil && *a.IsLive
}
