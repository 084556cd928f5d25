package service

import (
	"context"
	"io"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/activity-platform-api/internal/dto"
	"github.com/noah-isme/activity-platform-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type memoryActivityRepo struct {
	activities []models.Activity
}

func (m *memoryActivityRepo) List(ctx context.Context) ([]models.Activity, error) {
	results := make([]models.Activity, len(m.activities))
	copy(results, m.activities)
	return results, nil
}

func (m *memoryActivityRepo) GetByID(ctx context.Context, id string) (models.Activity, error) {
	for _, activity := range m.activities {
		if activity.ID == id {
			return activity, nil
		}
	}
	return models.Activity{}, gorm.ErrRecordNotFound
}

func (m *memoryActivityRepo) Create(ctx context.Context, activity *models.Activity) error {
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = time.Now()
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *memoryActivityRepo) Update(ctx context.Context, activity *models.Activity) error {
	for i, existing := range m.activities {
		if existing.ID == activity.ID {
			activity.UpdatedAt = time.Now()
			m.activities[i] = *activity
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryActivityRepo) Delete(ctx context.Context, id string) error {
	for i, existing := range m.activities {
		if existing.ID == id {
			m.activities = append(m.activities[:i], m.activities[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func seededRepo() *memoryActivityRepo {
	live := true
	duration := 90
	return &memoryActivityRepo{activities: []models.Activity{
		{ID: "a1", Title: "React Fundamentals", CourseName: "Web Development", ProgramName: "Full Stack", Type: models.TypeOnlineClass, Status: models.StatusUpcoming, ScheduledDate: day(15), ScheduledTime: "14:30", DurationMinutes: &duration, IsLive: &live},
		{ID: "a2", Title: "Database Essay", CourseName: "Data Engineering", ProgramName: "Full Stack", Type: models.TypeAssignment, Status: models.StatusInProgress, ScheduledDate: day(18)},
		{ID: "a3", Title: "Algorithms Midterm", CourseName: "CS Core", ProgramName: "Software Engineering", Type: models.TypeQuiz, Status: models.StatusCompleted, ScheduledDate: day(10)},
		{ID: "a4", Title: "Ethics Debate", CourseName: "Humanities", ProgramName: "Software Engineering", Type: models.TypeDiscussion, Status: models.StatusOverdue, ScheduledDate: day(5)},
		{ID: "a5", Title: "Go Basics", CourseName: "Backend", ProgramName: "Software Engineering", Type: models.TypeOnlineClass, Status: models.StatusUpcoming, ScheduledDate: day(20)},
		{ID: "a6", Title: "REST API Quiz", CourseName: "Backend", ProgramName: "Software Engineering", Type: models.TypeQuiz, Status: models.StatusInProgress, ScheduledDate: day(12)},
		{ID: "a7", Title: "Testing Workshop", CourseName: "Backend", ProgramName: "Software Engineering", Type: models.TypeOnlineClass, Status: models.StatusUpcoming, ScheduledDate: day(25)},
	}}
}

func newTestService(repo *memoryActivityRepo, cache *redis.Client) ActivityService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewActivityService(repo, cache, time.Minute, nil, "", validate, 5, testLogger())
}

func listItemIDs(response dto.ActivityListResponse) []string {
	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestActivityServiceListDefaults(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	response, err := svc.List(context.Background(), dto.ActivityListRequest{})
	require.NoError(t, err)

	require.Len(t, response.Items, 5)
	require.Equal(t, 1, response.Pagination.Page)
	require.Equal(t, 5, response.Pagination.PageSize)
	require.Equal(t, 7, response.Pagination.Total)
	require.Equal(t, 2, response.Pagination.TotalPages)
}

func TestActivityServiceListFiltersSortsAndPaginates(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	response, err := svc.List(context.Background(), dto.ActivityListRequest{
		Status: "incomplete",
		Sort:   "date-desc",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"a2", "a6", "a4"}, listItemIDs(response))
	require.Equal(t, 3, response.Pagination.Total)
	require.Equal(t, 1, response.Pagination.TotalPages)
}

func TestActivityServiceListSearchAndDateRange(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	response, err := svc.List(context.Background(), dto.ActivityListRequest{
		Search:   "backend",
		DateFrom: "2024-01-12",
		DateTo:   "2024-01-20",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"a5", "a6"}, listItemIDs(response))
}

func TestActivityServiceListOutOfRangePageIsEmpty(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	response, err := svc.List(context.Background(), dto.ActivityListRequest{Page: 4})
	require.NoError(t, err)

	require.Empty(t, response.Items)
	require.Equal(t, 7, response.Pagination.Total)
	require.Equal(t, 2, response.Pagination.TotalPages)
}

func TestActivityServiceListRejectsUnknownSort(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	_, err := svc.List(context.Background(), dto.ActivityListRequest{Sort: "priority"})
	require.Error(t, err)
}

func TestActivityServiceListResolvesDisplayFields(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	response, err := svc.List(context.Background(), dto.ActivityListRequest{Type: "online-class", Sort: "date-asc"})
	require.NoError(t, err)
	require.NotEmpty(t, response.Items)

	first := response.Items[0]
	require.Equal(t, "a1", first.ID)
	require.Equal(t, "Online Class", first.TypeLabel)
	require.Equal(t, "Upcoming", first.StatusLabel)
	require.Equal(t, "blue", first.StatusColor)
	require.Equal(t, "Join Now", first.ActionLabel)
	require.Equal(t, "Mon, Jan 15, 2024", first.DateDisplay)
	require.Equal(t, "2:30 PM", first.TimeDisplay)
	require.Equal(t, "1h 30m", first.DurationDisplay)
}

func TestActivityServiceCountsOverFullCollection(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)

	require.Equal(t, 7, counts.All)
	require.Equal(t, 3, counts.Upcoming)
	require.Equal(t, 2, counts.InProgress)
	require.Equal(t, 1, counts.Completed)
	require.Equal(t, 1, counts.Overdue)
	require.Equal(t, 3, counts.Incomplete)
	require.Equal(t, 3, counts.Due)
	require.Equal(t, counts.All, counts.Upcoming+counts.InProgress+counts.Completed+counts.Overdue)
}

func TestActivityServiceCountsCache(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer redisClient.Close()

	repo := seededRepo()
	svc := newTestService(repo, redisClient)

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, counts.All)

	// mutate repo directly to ensure the cache keeps the previous totals
	repo.activities = repo.activities[:3]

	cached, err := svc.Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, cached.All)
}

func TestActivityServiceCreateInvalidatesCountsCache(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer redisClient.Close()

	svc := newTestService(seededRepo(), redisClient)

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, counts.All)

	_, err = svc.Create(context.Background(), dto.ActivityCreateRequest{
		Title:         "Capstone Review",
		CourseName:    "Backend",
		ProgramName:   "Software Engineering",
		Type:          "discussion",
		Status:        "upcoming",
		ScheduledDate: "2024-02-01",
	})
	require.NoError(t, err)

	refreshed, err := svc.Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 8, refreshed.All)
	require.Equal(t, 4, refreshed.Upcoming)
}

func TestActivityServiceGetNotFound(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestActivityServiceCreateValidatesPayload(t *testing.T) {
	svc := newTestService(&memoryActivityRepo{}, nil)

	_, err := svc.Create(context.Background(), dto.ActivityCreateRequest{
		Title: "x",
	})
	require.Error(t, err)
}

func TestActivityServiceCreateSanitizesDescription(t *testing.T) {
	svc := newTestService(&memoryActivityRepo{}, nil)

	created, err := svc.Create(context.Background(), dto.ActivityCreateRequest{
		Title:         "Security Basics",
		CourseName:    "Backend",
		ProgramName:   "Software Engineering",
		Type:          "quiz",
		Status:        "upcoming",
		ScheduledDate: "2024-02-10",
		Description:   `Read this <script>alert("x")</script>carefully`,
	})
	require.NoError(t, err)
	require.NotContains(t, created.Description, "<script>")
	require.Contains(t, created.Description, "carefully")
	require.NotEmpty(t, created.ID)
}

func TestActivityServiceUpdateAppliesPartialChanges(t *testing.T) {
	repo := seededRepo()
	svc := newTestService(repo, nil)

	status := "completed"
	progress := 100
	updated, err := svc.Update(context.Background(), "a2", dto.ActivityUpdateRequest{
		Status:   &status,
		Progress: &progress,
	})
	require.NoError(t, err)

	require.Equal(t, "completed", updated.Status)
	require.Equal(t, "Review", updated.ActionLabel)
	require.Equal(t, "Database Essay", updated.Title)
}

func TestActivityServiceUpdateNotFound(t *testing.T) {
	svc := newTestService(seededRepo(), nil)

	title := "New Title"
	_, err := svc.Update(context.Background(), "missing", dto.ActivityUpdateRequest{Title: &title})
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestActivityServiceDelete(t *testing.T) {
	repo := seededRepo()
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), "a1"))
	require.Len(t, repo.activities, 6)

	require.ErrorIs(t, svc.Delete(context.Background(), "a1"), ErrActivityNotFound)
}
