package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pokecreche/pokecreche-api/internal/models"
	appErrors "github.com/pokecreche/pokecreche-api/pkg/errors"
	"github.com/pokecreche/pokecreche-api/pkg/export"
)

type eventRepository interface {
	List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
	Upsert(ctx context.Context, event *models.CalendarEvent) error
	Update(ctx context.Context, event *models.CalendarEvent) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type eventCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const eventCachePattern = "events:*"

// CalendarService manages the per-day event calendar. The cache is
// optional; a nil cache turns every lookup into a repository query.
type CalendarService struct {
	repo      eventRepository
	cache     eventCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewCalendarService constructs the service.
func NewCalendarService(repo eventRepository, cache eventCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger, metrics: metrics}
}

// CreateEventRequest describes the create payload.
type CreateEventRequest struct {
	Date  string `json:"date" validate:"required"`
	Title string `json:"title" validate:"required"`
	Color string `json:"color" validate:"required,oneof=green red none"`
}

// UpdateEventRequest describes the full-replace update payload.
type UpdateEventRequest struct {
	Date  string `json:"date" validate:"required"`
	Title string `json:"title" validate:"required"`
	Color string `json:"color" validate:"required,oneof=green red none"`
}

// List returns the events falling inside the given month, optionally
// restricted to one teacher.
func (s *CalendarService) List(ctx context.Context, year, month int, teacherID string) ([]models.CalendarEvent, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Parâmetros year e month (1-12) são obrigatórios")
	}

	key := fmt.Sprintf("events:%d:%d:%s", year, month, teacherID)
	if s.cache != nil {
		start := time.Now()
		var cached []models.CalendarEvent
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.metrics.RecordCacheOperation(true, time.Since(start))
			return cached, nil
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
		if appErrors.FromError(err).Code != appErrors.ErrCacheMiss.Code {
			s.logger.Warn("event cache lookup failed", zap.Error(err))
		}
	}

	first, last := monthRange(year, month)
	events, err := s.repo.List(ctx, models.CalendarFilter{StartDate: first, EndDate: last, TeacherID: teacherID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao buscar eventos")
	}

	if s.cache != nil {
		start := time.Now()
		if err := s.cache.Set(ctx, key, events, s.cacheTTL); err != nil {
			s.logger.Warn("event cache store failed", zap.Error(err))
		}
		s.metrics.ObserveCacheWrite(time.Since(start))
	}

	return events, nil
}

// Create stores an event for the authenticated teacher. A second submit
// for the same (teacher, date) slot overwrites title and color in place;
// the calendar widget uses that path as its edit gesture.
func (s *CalendarService) Create(ctx context.Context, teacherID string, req CreateEventRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date, title e color são obrigatórios")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return "", appErrors.Clone(appErrors.ErrValidation, "date inválida, esperado YYYY-MM-DD")
	}

	event := &models.CalendarEvent{
		TeacherID: optionalID(teacherID),
		Date:      req.Date,
		Title:     req.Title,
		Color:     models.EventColor(req.Color),
	}
	if err := s.repo.Upsert(ctx, event); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao inserir evento")
	}

	s.invalidate(ctx)
	return event.ID, nil
}

// Update fully replaces date, title, color and attribution by primary id.
// An unknown id reports zero affected rows rather than failing.
func (s *CalendarService) Update(ctx context.Context, id, teacherID string, req UpdateEventRequest) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "ID inválido")
	}
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "id, date, title e color são obrigatórios")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "date inválida, esperado YYYY-MM-DD")
	}

	event := &models.CalendarEvent{
		ID:        id,
		TeacherID: optionalID(teacherID),
		Date:      req.Date,
		Title:     req.Title,
		Color:     models.EventColor(req.Color),
	}
	affected, err := s.repo.Update(ctx, event)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao atualizar evento")
	}

	s.invalidate(ctx)
	return affected, nil
}

// Delete removes an event by id; zero affected rows is not an error.
func (s *CalendarService) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "ID inválido")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao deletar evento")
	}

	s.invalidate(ctx)
	return affected, nil
}

// Export renders a month's events as CSV or PDF bytes, returning the
// content type alongside.
func (s *CalendarService) Export(ctx context.Context, year, month int, teacherID, format string) ([]byte, string, error) {
	events, err := s.List(ctx, year, month, teacherID)
	if err != nil {
		return nil, "", err
	}

	table := export.Table{Columns: []string{"date", "title", "color", "teacher_id"}}
	for _, event := range events {
		teacher := ""
		if event.TeacherID != nil {
			teacher = *event.TeacherID
		}
		table.Rows = append(table.Rows, []string{event.Date, event.Title, string(event.Color), teacher})
	}

	switch format {
	case "csv", "":
		data, err := export.CSV(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao exportar eventos")
		}
		return data, "text/csv", nil
	case "pdf":
		data, err := export.PDF(table, fmt.Sprintf("Calendário %04d-%02d", year, month))
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao exportar eventos")
		}
		return data, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format deve ser csv ou pdf")
	}
}

func (s *CalendarService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, eventCachePattern); err != nil {
		s.logger.Warn("event cache invalidation failed", zap.Error(err))
	}
}

// monthRange returns the inclusive [first, last] YYYY-MM-DD bounds of a
// month. AddDate handles month lengths and leap years.
func monthRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
