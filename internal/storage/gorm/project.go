package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/storage"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository создаёт новый репозиторий проектов
func NewProjectRepository(db *gorm.DB) storage.ProjectRepository {
	return &projectRepository{db: db}
}

// Create создаёт проект
func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	requestID := logger.GetRequestID(ctx)

	dbProject := projectFromDomain(project)
	if err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(dbProject).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int64("created_by", project.CreatedBy).
			Msg("error creating project")
		return translateError(err)
	}

	project.ID = dbProject.ProjectID
	project.CreatedAt = dbProject.CreatedAt
	project.UpdatedAt = dbProject.UpdatedAt

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int64("project_id", project.ID).
		Msg("successfully created project")

	return nil
}

// GetByID получает проект по ID
func (r *projectRepository) GetByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	var dbProject Project
	if err := r.db.WithContext(ctx).First(&dbProject, "project_id = ?", projectID).Error; err != nil {
		return nil, translateError(err)
	}
	return projectToDomain(&dbProject), nil
}

// Update сохраняет изменяемые поля проекта
func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	requestID := logger.GetRequestID(ctx)

	dbProject := projectFromDomain(project)
	result := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("project_id = ?", project.ID).
		Updates(map[string]interface{}{
			"title":             dbProject.Title,
			"abstract":          dbProject.Abstract,
			"objective":         dbProject.Objective,
			"category":          dbProject.Category,
			"guide_id":          dbProject.GuideID,
			"status":            dbProject.Status,
			"guide_status":      dbProject.GuideStatus,
			"visibility":        dbProject.Visibility,
			"ispublished":       dbProject.IsPublished,
			"hosted_link":       dbProject.HostedLink,
			"paper_link":        dbProject.PaperLink,
			"conference_name":   dbProject.ConferenceName,
			"conference_year":   dbProject.ConferenceYear,
			"conference_status": dbProject.ConferenceStatus,
			"updated_at":        gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int64("project_id", project.ID).
			Msg("error updating project")
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	log.Debug().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int64("project_id", project.ID).
		Str("status", string(project.Status)).
		Msg("updated project")

	return nil
}

// ListByUser возвращает проекты, созданные пользователем или где он участник команды
func (r *projectRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	var dbProjects []Project
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Or("project_id IN (?)",
			r.db.Table("teams t").
				Select("t.project_id").
				Joins("JOIN team_members tm ON tm.team_id = t.team_id").
				Where("tm.user_id = ?", userID),
		).
		Order("created_at DESC, project_id DESC").
		Find(&dbProjects).Error
	if err != nil {
		return nil, translateError(err)
	}

	projects := make([]domain.Project, len(dbProjects))
	for i := range dbProjects {
		projects[i] = *projectToDomain(&dbProjects[i])
	}
	return projects, nil
}

// IncrementLikes атомарно увеличивает счётчик лайков
func (r *projectRepository) IncrementLikes(ctx context.Context, projectID int64) (int, error) {
	var likes []int
	err := r.db.WithContext(ctx).
		Raw(`UPDATE projects SET likes = likes + 1 WHERE project_id = ? RETURNING likes`, projectID).
		Scan(&likes).Error
	if err != nil {
		return 0, translateError(err)
	}
	if len(likes) == 0 {
		return 0, storage.ErrNotFound
	}
	return likes[0], nil
}

// GetStudentStats считает статистику студента одним запросом
func (r *projectRepository) GetStudentStats(ctx context.Context, userID int64) (*domain.StudentStats, error) {
	var row struct {
		TotalProjects      int
		PublishedProjects  int
		InProgressProjects int
		TeamsParticipated  int
	}

	err := r.db.WithContext(ctx).Raw(`
		WITH mine AS (
			SELECT DISTINCT p.project_id, p.ispublished, p.status
			FROM projects p
			LEFT JOIN teams t ON t.project_id = p.project_id
			LEFT JOIN team_members tm ON tm.team_id = t.team_id
			WHERE p.created_by = @user OR tm.user_id = @user
		)
		SELECT
			(SELECT COUNT(*) FROM mine) AS total_projects,
			(SELECT COUNT(*) FROM mine WHERE ispublished) AS published_projects,
			(SELECT COUNT(*) FROM mine WHERE status = 'in-progress') AS in_progress_projects,
			(SELECT COUNT(DISTINCT team_id) FROM team_members WHERE user_id = @user) AS teams_participated
	`, map[string]interface{}{"user": userID}).Scan(&row).Error
	if err != nil {
		return nil, translateError(err)
	}

	return &domain.StudentStats{
		TotalProjects:      row.TotalProjects,
		PublishedProjects:  row.PublishedProjects,
		InProgressProjects: row.InProgressProjects,
		TeamsParticipated:  row.TeamsParticipated,
	}, nil
}
