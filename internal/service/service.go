package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/metrics"
	"academicHub/internal/notify"
	"academicHub/internal/storage"
)

// Service реализует domain.AcademicService используя storage.TxManager
type Service struct {
	txmgr     storage.TxManager
	publisher notify.Publisher
	now       func() time.Time
}

// Проверка что Service реализует интерфейс domain.AcademicService
var _ domain.AcademicService = (*Service)(nil)

// New создаёт новый Service с TxManager и издателем событий
func New(txmgr storage.TxManager, publisher notify.Publisher) *Service {
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	return &Service{
		txmgr:     txmgr,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	var result error

	switch {
	case domain.IsDomainError(err):
		result = err
	case errors.Is(err, storage.ErrNotFound):
		result = domain.ErrResourceNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		// Определяем нарушенное ограничение по имени операции
		switch op {
		case "service.ReplyToTeamRequest":
			result = domain.ErrTeamExists
		case "service.CreateTeamRequest":
			result = domain.InvalidState("project already has a pending team request")
		default:
			result = domain.ErrInternal
		}
	case errors.Is(err, storage.ErrConflict):
		result = domain.ErrInvalidState
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return ctx.Err()
	default:
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "service").
			Str("operation", op).
			Msg("operation failed")
		result = domain.ErrInternal
	}

	var domainErr *domain.Error
	if errors.As(result, &domainErr) {
		metrics.DomainErrorsTotal.WithLabelValues(string(domainErr.Code)).Inc()
	}

	return result
}

// publish отправляет события после коммита, ошибка публикации не откатывает операцию
func (s *Service) publish(ctx context.Context, events ...notify.Event) {
	for _, event := range events {
		if event.OccurredAt.IsZero() {
			event.OccurredAt = s.now()
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			metrics.EventPublishErrorsTotal.Inc()
			log.Warn().
				Err(err).
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "service").
				Str("event_type", string(event.Type)).
				Msg("failed to publish workflow event")
		}
	}
}

// observe записывает длительность операции сервиса
func observe(operation string, start time.Time) {
	metrics.ServiceOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
