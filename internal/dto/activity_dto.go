package dto

import (
	"time"

	"github.com/noah-isme/activity-platform-api/internal/models"
	"github.com/noah-isme/activity-platform-api/internal/schedule"
)

// DateLayout is the wire format for calendar dates (no time component).
const DateLayout = "2006-01-02"

// ActivityListRequest captures the listing query parameters.
type ActivityListRequest struct {
	Type     string `query:"type" json:"type" validate:"omitempty,oneof=all online-class assignment quiz discussion"`
	Status   string `query:"status" json:"status" validate:"omitempty,oneof=all incomplete upcoming in-progress completed overdue"`
	Search   string `query:"search" json:"search"`
	DateFrom string `query:"date_from" json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"date_to" json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Sort     string `query:"sort" json:"sort" validate:"omitempty,oneof=date-asc date-desc title-asc title-desc"`
	Page     int    `query:"page" json:"page" validate:"omitempty,gte=1"`
	PageSize int    `query:"page_size" json:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// ActivityCreateRequest describes the payload for registering an activity.
type ActivityCreateRequest struct {
	Title           string   `json:"title" validate:"required,min=3"`
	CourseName      string   `json:"course_name" validate:"required"`
	ProgramName     string   `json:"program_name" validate:"required"`
	Type            string   `json:"type" validate:"required,oneof=online-class assignment quiz discussion"`
	Status          string   `json:"status" validate:"required,oneof=upcoming in-progress completed overdue"`
	ScheduledDate   string   `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime   string   `json:"scheduled_time" validate:"omitempty,datetime=15:04"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gte=0"`
	Progress        *int     `json:"progress" validate:"omitempty,gte=0,lte=100"`
	DueDate         string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	MaxScore        *float64 `json:"max_score" validate:"omitempty,gte=0"`
	Score           *float64 `json:"score" validate:"omitempty,gte=0"`
	IsLive          *bool    `json:"is_live"`
	RecordingURL    string   `json:"recording_url" validate:"omitempty,url"`
	MeetingLink     string   `json:"meeting_link" validate:"omitempty,url"`
	Description     string   `json:"description"`
	Instructor      string   `json:"instructor"`
}

// ActivityUpdateRequest describes a partial update; nil fields are left
// untouched.
type ActivityUpdateRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=3"`
	CourseName      *string  `json:"course_name" validate:"omitempty,min=1"`
	ProgramName     *string  `json:"program_name" validate:"omitempty,min=1"`
	Type            *string  `json:"type" validate:"omitempty,oneof=online-class assignment quiz discussion"`
	Status          *string  `json:"status" validate:"omitempty,oneof=upcoming in-progress completed overdue"`
	ScheduledDate   *string  `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime   *string  `json:"scheduled_time" validate:"omitempty,datetime=15:04"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gte=0"`
	Progress        *int     `json:"progress" validate:"omitempty,gte=0,lte=100"`
	DueDate         *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	MaxScore        *float64 `json:"max_score" validate:"omitempty,gte=0"`
	Score           *float64 `json:"score" validate:"omitempty,gte=0"`
	IsLive          *bool    `json:"is_live"`
	RecordingURL    *string  `json:"recording_url" validate:"omitempty,url"`
	MeetingLink     *string  `json:"meeting_link" validate:"omitempty,url"`
	Description     *string  `json:"description"`
	Instructor      *string  `json:"instructor"`
}

// ActivityResponse is the serialized representation returned to clients,
// including the derived display strings the rendering layers consume.
type ActivityResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	CourseName      string     `json:"course_name"`
	ProgramName     string     `json:"program_name"`
	Type            string     `json:"type"`
	TypeLabel       string     `json:"type_label"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	StatusColor     string     `json:"status_color"`
	ActionLabel     string     `json:"action_label"`
	ScheduledDate   string     `json:"scheduled_date"`
	ScheduledTime   string     `json:"scheduled_time,omitempty"`
	DateDisplay     string     `json:"date_display"`
	TimeDisplay     string     `json:"time_display,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	DurationDisplay string     `json:"duration_display,omitempty"`
	Progress        *int       `json:"progress,omitempty"`
	DueDate         *string    `json:"due_date,omitempty"`
	MaxScore        *float64   `json:"max_score,omitempty"`
	Score           *float64   `json:"score,omitempty"`
	IsLive          *bool      `json:"is_live,omitempty"`
	RecordingURL    string     `json:"recording_url,omitempty"`
	MeetingLink     string     `json:"meeting_link,omitempty"`
	Description     string     `json:"description,omitempty"`
	Instructor      string     `json:"instructor,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PaginationMeta captures pagination metadata for list responses.
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ActivityListResponse is the paginated listing payload.
type ActivityListResponse struct {
	Items      []ActivityResponse `json:"items"`
	Pagination PaginationMeta     `json:"pagination"`
}

// ActivityCountsResponse reports per-status totals over the complete
// collection, together with the derived sidebar categories.
type ActivityCountsResponse struct {
	All        int `json:"all"`
	Upcoming   int `json:"upcoming"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
	Incomplete int `json:"incomplete"`
	Due        int `json:"due"`
}

// NewActivityResponse converts a model into a DTO, resolving labels and
// formatting date, time and duration for display.
func NewActivityResponse(model models.Activity) ActivityResponse {
	response := ActivityResponse{
		ID:              model.ID,
		Title:           model.Title,
		CourseName:      model.CourseName,
		ProgramName:     model.ProgramName,
		Type:            string(model.Type),
		TypeLabel:       schedule.TypeLabel(model.Type),
		Status:          string(model.Status),
		StatusLabel:     schedule.StatusLabel(model.Status),
		StatusColor:     schedule.StatusColor(model.Status),
		ActionLabel:     schedule.ActionLabel(model),
		ScheduledDate:   model.ScheduledDate.Format(DateLayout),
		ScheduledTime:   model.ScheduledTime,
		DateDisplay:     schedule.FormatDate(model.ScheduledDate),
		TimeDisplay:     schedule.FormatTime(model.ScheduledTime),
		DurationMinutes: model.DurationMinutes,
		DurationDisplay: schedule.FormatDuration(model.DurationMinutes),
		Progress:        model.Progress,
		MaxScore:        model.MaxScore,
		Score:           model.Score,
		IsLive:          model.IsLive,
		RecordingURL:    model.RecordingURL,
		MeetingLink:     model.MeetingLink,
		Description:     model.Description,
		Instructor:      model.Instructor,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}

	if model.DueDate != nil {
		due := model.DueDate.Format(DateLayout)
		response.DueDate = &due
	}

	return response
}

// NewActivityResponseSlice converts a slice of models into DTOs.
func NewActivityResponseSlice(activities []models.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, NewActivityResponse(activity))
	}

	return responses
}

// NewActivityCountsResponse maps engine counts into the wire payload.
func NewActivityCountsResponse(counts schedule.StatusCounts) ActivityCountsResponse {
	return ActivityCountsResponse{
		All:        counts.All,
		Upcoming:   counts.Upcoming,
		InProgress: counts.InProgress,
		Completed:  counts.Completed,
		Overdue:    counts.Overdue,
		Incomplete: counts.Incomplete(),
		Due:        counts.Due(),
	}
}
