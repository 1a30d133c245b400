package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/storage"
)

type guideAssignmentRepository struct {
	db *gorm.DB
}

// NewGuideAssignmentRepository создаёт новый репозиторий назначений руководителей
func NewGuideAssignmentRepository(db *gorm.DB) storage.GuideAssignmentRepository {
	return &guideAssignmentRepository{db: db}
}

// Create создаёт назначение
func (r *guideAssignmentRepository) Create(ctx context.Context, assignment *domain.GuideAssignment) error {
	dbAssignment := &GuideAssignment{
		TeamID:  assignment.TeamID,
		GuideID: assignment.GuideID,
		Status:  string(assignment.Status),
	}
	if err := r.db.WithContext(ctx).Create(dbAssignment).Error; err != nil {
		return translateError(err)
	}

	assignment.ID = dbAssignment.AssignmentID
	assignment.AssignedOn = dbAssignment.AssignedOn

	log.Info().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int64("assignment_id", assignment.ID).
		Int64("guide_id", assignment.GuideID).
		Msg("successfully created guide assignment")

	return nil
}

// GetPending получает ожидающее назначение руководителя на команду
func (r *guideAssignmentRepository) GetPending(ctx context.Context, teamID, guideID int64) (*domain.GuideAssignment, error) {
	var dbAssignment GuideAssignment
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND guide_id = ? AND status = ?", teamID, guideID, string(domain.GuideAssignmentPending)).
		Order("assignment_id DESC").
		First(&dbAssignment).Error
	if err != nil {
		return nil, translateError(err)
	}
	a := assignmentToDomain(&dbAssignment)
	return &a, nil
}

// UpdateStatus сохраняет статус назначения
func (r *guideAssignmentRepository) UpdateStatus(ctx context.Context, assignment *domain.GuideAssignment) error {
	result := r.db.WithContext(ctx).
		Model(&GuideAssignment{}).
		Where("assignment_id = ?", assignment.ID).
		Update("status", string(assignment.Status))
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListByTeam возвращает назначения команды, новые первыми
func (r *guideAssignmentRepository) ListByTeam(ctx context.Context, teamID int64) ([]domain.GuideAssignment, error) {
	var dbAssignments []GuideAssignment
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("assignment_id DESC").
		Find(&dbAssignments).Error
	if err != nil {
		return nil, translateError(err)
	}

	assignments := make([]domain.GuideAssignment, len(dbAssignments))
	for i := range dbAssignments {
		assignments[i] = assignmentToDomain(&dbAssignments[i])
	}
	return assignments, nil
}

// ListByGuide возвращает назначения руководителя с данными проекта
func (r *guideAssignmentRepository) ListByGuide(ctx context.Context, guideID int64) ([]domain.GuideAssignmentView, error) {
	type row struct {
		GuideAssignment
		ProjectID     int64
		ProjectTitle  string
		ProjectStatus string
		TeamName      string
		CreatedByName string
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("guide_assignments ga").
		Select(`ga.*, p.project_id, p.title AS project_title, p.status AS project_status,
			t.team_name, u.name AS created_by_name`).
		Joins("JOIN teams t ON t.team_id = ga.team_id").
		Joins("JOIN projects p ON p.project_id = t.project_id").
		Joins("JOIN users u ON u.user_id = p.created_by").
		Where("ga.guide_id = ?", guideID).
		Order("ga.assignment_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	views := make([]domain.GuideAssignmentView, len(rows))
	for i := range rows {
		views[i] = domain.GuideAssignmentView{
			GuideAssignment: assignmentToDomain(&rows[i].GuideAssignment),
			ProjectID:       rows[i].ProjectID,
			ProjectTitle:    rows[i].ProjectTitle,
			ProjectStatus:   domain.ProjectStatus(rows[i].ProjectStatus),
			TeamName:        rows[i].TeamName,
			CreatedByName:   rows[i].CreatedByName,
		}
	}
	return views, nil
}
