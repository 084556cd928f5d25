package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/activity-platform-api/internal/dto"
	"github.com/noah-isme/activity-platform-api/internal/models"
	"github.com/noah-isme/activity-platform-api/internal/observability"
	"github.com/noah-isme/activity-platform-api/internal/repository"
	"github.com/noah-isme/activity-platform-api/internal/schedule"
)

// ErrActivityNotFound indicates the requested activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

const countsCacheKey = "activities:counts"

// ActivityService exposes the learner activity listing use cases.
type ActivityService interface {
	List(ctx context.Context, req dto.ActivityListRequest) (dto.ActivityListResponse, error)
	Counts(ctx context.Context) (dto.ActivityCountsResponse, error)
	Get(ctx context.Context, id string) (dto.ActivityResponse, error)
	Create(ctx context.Context, payload dto.ActivityCreateRequest) (dto.ActivityResponse, error)
	Update(ctx context.Context, id string, payload dto.ActivityUpdateRequest) (dto.ActivityResponse, error)
	Delete(ctx context.Context, id string) error
}

type activityService struct {
	repo          repository.ActivityRepository
	cache         *redis.Client
	cacheTTL      time.Duration
	events        *nats.Conn
	eventsSubject string
	validator     *validator.Validate
	sanitizer     *bluemonday.Policy
	tracer        trace.Tracer
	logger        zerolog.Logger
	pageSize      int
}

// NewActivityService builds the activity service. The cache client and
// NATS connection are optional; passing nil disables the respective
// concern.
func NewActivityService(repo repository.ActivityRepository, cache *redis.Client, cacheTTL time.Duration, events *nats.Conn, eventsSubject string, validate *validator.Validate, pageSize int, logger zerolog.Logger) ActivityService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	if pageSize <= 0 {
		pageSize = schedule.DefaultPageSize
	}

	return &activityService{
		repo:          repo,
		cache:         cache,
		cacheTTL:      cacheTTL,
		events:        events,
		eventsSubject: eventsSubject,
		validator:     validate,
		sanitizer:     bluemonday.UGCPolicy(),
		tracer:        otel.Tracer("github.com/noah-isme/activity-platform-api/internal/service/activity"),
		logger:        logger.With().Str("component", "activity_service").Logger(),
		pageSize:      pageSize,
	}
}

func (s *activityService) List(ctx context.Context, req dto.ActivityListRequest) (dto.ActivityListResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "activities.list", trace.WithAttributes(
		attribute.String("filter.type", req.Type),
		attribute.String("filter.status", req.Status),
		attribute.String("sort", req.Sort),
	))
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return dto.ActivityListResponse{}, err
	}

	filters, err := filtersFromRequest(req)
	if err != nil {
		return dto.ActivityListResponse{}, err
	}

	activities, err := s.repo.List(spanCtx)
	if err != nil {
		return dto.ActivityListResponse{}, err
	}

	filtered := schedule.Filter(activities, filters)
	sorted := schedule.Sort(filtered, schedule.SortOption(req.Sort))

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	page := schedule.Paginate(sorted, req.Page, pageSize)

	return dto.ActivityListResponse{
		Items: dto.NewActivityResponseSlice(page.Items),
		Pagination: dto.PaginationMeta{
			Page:       page.Number,
			PageSize:   page.Size,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}, nil
}

// Counts tallies the complete, unfiltered collection so sidebar totals
// stay stable while the visible list narrows.
func (s *activityService) Counts(ctx context.Context) (dto.ActivityCountsResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "activities.counts")
	defer span.End()

	if s.cache != nil {
		if cached, err := s.cache.Get(spanCtx, countsCacheKey).Result(); err == nil {
			var response dto.ActivityCountsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				observability.CountsCacheLookups().WithLabelValues("hit").Inc()
				s.logger.Debug().Msg("activity counts cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read counts cache")
		}
		observability.CountsCacheLookups().WithLabelValues("miss").Inc()
	}

	activities, err := s.repo.List(spanCtx)
	if err != nil {
		return dto.ActivityCountsResponse{}, err
	}

	response := dto.NewActivityCountsResponse(schedule.Count(activities))

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(spanCtx, countsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store counts cache")
			}
		}
	}

	return response, nil
}

func (s *activityService) Get(ctx context.Context, id string) (dto.ActivityResponse, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ActivityResponse{}, ErrActivityNotFound
		}

		return dto.ActivityResponse{}, err
	}

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) Create(ctx context.Context, payload dto.ActivityCreateRequest) (dto.ActivityResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ActivityResponse{}, err
	}

	scheduledDate, err := time.Parse(dto.DateLayout, payload.ScheduledDate)
	if err != nil {
		return dto.ActivityResponse{}, err
	}

	activity := models.Activity{
		ID:              uuid.NewString(),
		Title:           payload.Title,
		CourseName:      payload.CourseName,
		ProgramName:     payload.ProgramName,
		Type:            models.ActivityType(payload.Type),
		Status:          models.ActivityStatus(payload.Status),
		ScheduledDate:   scheduledDate,
		ScheduledTime:   payload.ScheduledTime,
		DurationMinutes: payload.DurationMinutes,
		Progress:        payload.Progress,
		MaxScore:        payload.MaxScore,
		Score:           payload.Score,
		IsLive:          payload.IsLive,
		RecordingURL:    payload.RecordingURL,
		MeetingLink:     payload.MeetingLink,
		Description:     s.sanitizer.Sanitize(payload.Description),
		Instructor:      payload.Instructor,
	}

	if payload.DueDate != "" {
		dueDate, err := time.Parse(dto.DateLayout, payload.DueDate)
		if err != nil {
			return dto.ActivityResponse{}, err
		}
		activity.DueDate = &dueDate
	}

	if err := s.repo.Create(ctx, &activity); err != nil {
		return dto.ActivityResponse{}, err
	}

	s.afterChange(ctx, "created", activity)
	s.logger.Info().Str("activity_id", activity.ID).Msg("activity created")

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) Update(ctx context.Context, id string, payload dto.ActivityUpdateRequest) (dto.ActivityResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ActivityResponse{}, err
	}

	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ActivityResponse{}, ErrActivityNotFound
		}

		return dto.ActivityResponse{}, err
	}

	if err := s.applyUpdate(&activity, payload); err != nil {
		return dto.ActivityResponse{}, err
	}

	if err := s.repo.Update(ctx, &activity); err != nil {
		return dto.ActivityResponse{}, err
	}

	s.afterChange(ctx, "updated", activity)
	s.logger.Info().Str("activity_id", activity.ID).Msg("activity updated")

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}

		return err
	}

	s.afterChange(ctx, "deleted", models.Activity{ID: id})
	s.logger.Info().Str("activity_id", id).Msg("activity deleted")

	return nil
}

// afterChange invalidates the counts cache and notifies downstream
// consumers that the collection changed.
func (s *activityService) afterChange(ctx context.Context, action string, activity models.Activity) {
	if s.cache != nil {
		if err := s.cache.Del(ctx, countsCacheKey).Err(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate counts cache")
		}
	}

	if s.events == nil || s.eventsSubject == "" {
		return
	}

	event := map[string]string{
		"action":      action,
		"activity_id": activity.ID,
		"status":      string(activity.Status),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	if err := s.events.Publish(s.eventsSubject, payload); err != nil {
		s.logger.Warn().Err(err).Str("subject", s.eventsSubject).Msg("failed to publish activity event")
	}
}

func (s *activityService) applyUpdate(activity *models.Activity, payload dto.ActivityUpdateRequest) error {
	if payload.Title != nil {
		activity.Title = *payload.Title
	}
	if payload.CourseName != nil {
		activity.CourseName = *payload.CourseName
	}
	if payload.ProgramName != nil {
		activity.ProgramName = *payload.ProgramName
	}
	if payload.Type != nil {
		activity.Type = models.ActivityType(*payload.Type)
	}
	if payload.Status != nil {
		activity.Status = models.ActivityStatus(*payload.Status)
	}
	if payload.ScheduledDate != nil {
		scheduledDate, err := time.Parse(dto.DateLayout, *payload.ScheduledDate)
		if err != nil {
			return err
		}
		activity.ScheduledDate = scheduledDate
	}
	if payload.ScheduledTime != nil {
		activity.ScheduledTime = *payload.ScheduledTime
	}
	if payload.DurationMinutes != nil {
		activity.DurationMinutes = payload.DurationMinutes
	}
	if payload.Progress != nil {
		activity.Progress = payload.Progress
	}
	if payload.DueDate != nil {
		dueDate, err := time.Parse(dto.DateLayout, *payload.DueDate)
		if err != nil {
			return err
		}
		activity.DueDate = &dueDate
	}
	if payload.MaxScore != nil {
		activity.MaxScore = payload.MaxScore
	}
	if payload.Score != nil {
		activity.Score = payload.Score
	}
	if payload.IsLive != nil {
		activity.IsLive = payload.IsLive
	}
	if payload.RecordingURL != nil {
		activity.RecordingURL = *payload.RecordingURL
	}
	if payload.MeetingLink != nil {
		activity.MeetingLink = *payload.MeetingLink
	}
	if payload.Description != nil {
		activity.Description = s.sanitizer.Sanitize(*payload.Description)
	}
	if payload.Instructor != nil {
		activity.Instructor = *payload.Instructor
	}

	return nil
}

func filtersFromRequest(req dto.ActivityListRequest) (schedule.Filters, error) {
	filters := schedule.Filters{
		Type:   req.Type,
		Status: req.Status,
		Search: req.Search,
	}

	if req.DateFrom != "" {
		from, err := time.Parse(dto.DateLayout, req.DateFrom)
		if err != nil {
			return schedule.Filters{}, err
		}
		filters.DateFrom = &from
	}

	if req.DateTo != "" {
		to, err := time.Parse(dto.DateLayout, req.DateTo)
		if err != nil {
			return schedule.Filters{}, err
		}
		filters.DateTo = &to
	}

	return filters, nil
}
