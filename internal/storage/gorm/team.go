package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/storage"
)

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository создаёт новый репозиторий команд
func NewTeamRepository(db *gorm.DB) storage.TeamRepository {
	return &teamRepository{db: db}
}

// Create создаёт команду вместе с участниками
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	requestID := logger.GetRequestID(ctx)

	dbTeam := &Team{
		ProjectID: team.ProjectID,
		TeamName:  team.Name,
		GuideID:   team.GuideID,
	}

	// Создаём команду, уникальный project_id защищает от повторной материализации
	if err := r.db.WithContext(ctx).Omit("Members").Create(dbTeam).Error; err != nil {
		log.Warn().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int64("project_id", team.ProjectID).
			Msg("error creating team")
		return translateError(err)
	}

	members := make([]TeamMember, len(team.Members))
	for i, m := range team.Members {
		members[i] = TeamMember{
			TeamID:     dbTeam.TeamID,
			UserID:     m.UserID,
			RoleInTeam: string(m.Role),
		}
	}

	if len(members) > 0 {
		if err := r.db.WithContext(ctx).Omit("User").Create(&members).Error; err != nil {
			return translateError(err)
		}
	}

	// Загружаем созданную команду с участниками
	if err := r.db.WithContext(ctx).
		Preload("Members.User").
		First(dbTeam, "team_id = ?", dbTeam.TeamID).Error; err != nil {
		return translateError(err)
	}

	created := teamToDomain(dbTeam)
	team.ID = created.ID
	team.CreatedAt = created.CreatedAt
	team.Members = created.Members

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int64("team_id", team.ID).
		Int64("project_id", team.ProjectID).
		Int("members", len(team.Members)).
		Msg("successfully created team")

	return nil
}

// GetByProjectID получает команду проекта с участниками
func (r *teamRepository) GetByProjectID(ctx context.Context, projectID int64) (*domain.Team, error) {
	var dbTeam Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_id")
		}).
		Preload("Members.User").
		First(&dbTeam, "project_id = ?", projectID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return teamToDomain(&dbTeam), nil
}

// IsMember проверяет что пользователь состоит в команде проекта
func (r *teamRepository) IsMember(ctx context.Context, projectID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("team_members tm").
		Joins("JOIN teams t ON t.team_id = tm.team_id").
		Where("t.project_id = ? AND tm.user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
