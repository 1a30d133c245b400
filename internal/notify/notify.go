// Package notify публикует события workflow формирования команд для внешних потребителей
// (дашборды, рассылка уведомлений). События отправляются после коммита транзакции.
package notify

import (
	"context"
	"time"
)

// DefaultChannel - канал Redis pub/sub для событий
const DefaultChannel = "academic_hub:events"

// EventType - тип события workflow
type EventType string

const (
	EventTeamRequestCreated   EventType = "team_request.created"
	EventTeamRequestReplied   EventType = "team_request.replied"
	EventTeamRequestCancelled EventType = "team_request.cancelled"
	EventTeamMaterialized     EventType = "team.materialized"
	EventGuideDecided         EventType = "guide.decided"
)

// Event - событие workflow
type Event struct {
	Type       EventType `json:"type"`
	RequestID  int64     `json:"request_id,omitempty"`
	ProjectID  int64     `json:"project_id,omitempty"`
	UserID     int64     `json:"user_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Recipients []int64   `json:"recipients,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher отправляет события
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher используется когда Redis не настроен
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
