package gorm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/storage"
)

// лидер первым, как при создании заявки
const leaderFirst = "CASE WHEN role = 'leader' THEN 0 ELSE 1 END, user_id"

type teamRequestRepository struct {
	db *gorm.DB
}

// NewTeamRequestRepository создаёт новый репозиторий заявок
func NewTeamRequestRepository(db *gorm.DB) storage.TeamRequestRepository {
	return &teamRequestRepository{db: db}
}

// Create создаёт заявку вместе с участниками
func (r *teamRequestRepository) Create(ctx context.Context, request *domain.TeamRequest) error {
	requestID := logger.GetRequestID(ctx)

	dbRequest := &TeamRequest{
		ProjectID:  request.ProjectID,
		LeaderID:   request.LeaderID,
		TeamName:   request.TeamName,
		GuideID:    request.GuideID,
		Status:     string(request.Status),
		GuideStage: string(request.GuideStage),
	}

	if err := r.db.WithContext(ctx).Omit("Members").Create(dbRequest).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int64("project_id", request.ProjectID).
			Msg("error creating team request")
		return translateError(err)
	}

	members := make([]TeamRequestMember, len(request.Members))
	for i, m := range request.Members {
		members[i] = TeamRequestMember{
			RequestID:   dbRequest.RequestID,
			UserID:      m.UserID,
			Role:        string(m.Role),
			ReplyStatus: string(m.ReplyStatus),
			RepliedAt:   m.RepliedAt,
		}
	}

	if len(members) > 0 {
		if err := r.db.WithContext(ctx).Create(&members).Error; err != nil {
			log.Error().
				Err(err).
				Str("request_id", requestID).
				Str("layer", "storage").
				Int64("team_request_id", dbRequest.RequestID).
				Msg("error creating team request members")
			return translateError(err)
		}
	}

	request.ID = dbRequest.RequestID
	request.CreatedAt = dbRequest.CreatedAt
	request.UpdatedAt = dbRequest.UpdatedAt
	for i := range request.Members {
		request.Members[i].RequestID = dbRequest.RequestID
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int64("team_request_id", request.ID).
		Int("members", len(members)).
		Msg("successfully created team request")

	return nil
}

// GetByID получает заявку с участниками
func (r *teamRequestRepository) GetByID(ctx context.Context, requestID int64) (*domain.TeamRequest, error) {
	var dbRequest TeamRequest
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order(leaderFirst)
		}).
		First(&dbRequest, "request_id = ?", requestID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return teamRequestToDomain(&dbRequest), nil
}

// GetByIDForUpdate блокирует строку заявки до конца транзакции и читает участников после блокировки
func (r *teamRequestRepository) GetByIDForUpdate(ctx context.Context, requestID int64) (*domain.TeamRequest, error) {
	var dbRequest TeamRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dbRequest, "request_id = ?", requestID).Error
	if err != nil {
		return nil, translateError(err)
	}

	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order(leaderFirst).
		Find(&dbRequest.Members).Error; err != nil {
		return nil, translateError(err)
	}

	return teamRequestToDomain(&dbRequest), nil
}

// HasPendingForProject проверяет наличие ожидающей заявки по проекту
func (r *teamRequestRepository) HasPendingForProject(ctx context.Context, projectID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TeamRequest{}).
		Where("project_id = ? AND status = ?", projectID, string(domain.TeamRequestStatusPending)).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// UpdateStatus сохраняет status и guide_stage заявки
func (r *teamRequestRepository) UpdateStatus(ctx context.Context, request *domain.TeamRequest) error {
	result := r.db.WithContext(ctx).
		Model(&TeamRequest{}).
		Where("request_id = ?", request.ID).
		Updates(map[string]interface{}{
			"status":      string(request.Status),
			"guide_stage": string(request.GuideStage),
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	log.Debug().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int64("team_request_id", request.ID).
		Str("status", string(request.Status)).
		Str("guide_stage", string(request.GuideStage)).
		Msg("updated team request status")

	return nil
}

// UpdateMemberReply записывает ответ участника
func (r *teamRequestRepository) UpdateMemberReply(
	ctx context.Context,
	requestID, userID int64,
	reply domain.MemberReplyStatus,
	repliedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&TeamRequestMember{}).
		Where("request_id = ? AND user_id = ?", requestID, userID).
		Updates(map[string]interface{}{
			"reply_status": string(reply),
			"replied_at":   repliedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListByUser возвращает заявки, где пользователь лидер или участник
func (r *teamRequestRepository) ListByUser(ctx context.Context, userID int64) ([]domain.TeamRequest, error) {
	var dbRequests []TeamRequest
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order(leaderFirst)
		}).
		Where("leader_id = ?", userID).
		Or("request_id IN (?)",
			r.db.Model(&TeamRequestMember{}).Select("request_id").Where("user_id = ?", userID),
		).
		Order("created_at DESC, request_id DESC").
		Find(&dbRequests).Error
	if err != nil {
		return nil, translateError(err)
	}

	requests := make([]domain.TeamRequest, len(dbRequests))
	for i := range dbRequests {
		requests[i] = *teamRequestToDomain(&dbRequests[i])
	}
	return requests, nil
}
