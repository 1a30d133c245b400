package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/metrics"
	"academicHub/internal/storage"
)

// CreateProject создаёт проект студента, поток и кафедра копируются из профиля студента
func (s *Service) CreateProject(outerCtx context.Context, input *domain.CreateProjectInput) (*domain.Project, error) {
	const op = "service.CreateProject"
	requestID := logger.GetRequestID(outerCtx)
	var project *domain.Project

	start := time.Now()
	defer observe("create_project", start)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("creator_id", input.CreatorID).
		Str("title", input.Title).
		Msg("creating project")

	if strings.TrimSpace(input.Title) == "" {
		return nil, s.formatError(outerCtx, op, domain.Validation("project title is required"))
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.ProjectVisibilityPublic
	}
	if !visibility.IsValid() {
		return nil, s.formatError(outerCtx, op, domain.Validation("visibility must be public or private"))
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		creator, err := tx.UserRepo().GetStudent(ctx, input.CreatorID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Validation("only students can create projects")
		}
		if err != nil {
			return err
		}

		project = &domain.Project{
			Title:       strings.TrimSpace(input.Title),
			Abstract:    input.Abstract,
			Objective:   input.Objective,
			Type:        input.Type,
			Category:    input.Category,
			CreatedBy:   creator.UserID,
			BatchID:     creator.BatchID,
			DeptID:      creator.DeptID,
			Status:      domain.ProjectStatusNew,
			GuideStatus: domain.GuideStatusNA,
			Visibility:  visibility,
			HostedLink:  input.HostedLink,
		}

		if input.GuideID != nil {
			guide, err := tx.UserRepo().GetFaculty(ctx, *input.GuideID)
			if errors.Is(err, storage.ErrNotFound) {
				return domain.Validation("guide must be a faculty member")
			}
			if err != nil {
				return err
			}
			if guide.DeptID != creator.DeptID {
				return domain.Validation("guide must belong to the student's department")
			}

			guideID := guide.UserID
			project.GuideID = &guideID
			project.Status = domain.ProjectStatusPending
			project.GuideStatus = domain.GuideStatusPending
		}

		return tx.ProjectRepo().Create(ctx, project)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.ProjectCreatedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("project_id", project.ID).
		Str("status", string(project.Status)).
		Msg("successfully created project")

	return project, nil
}

// ListMyProjects возвращает проекты, созданные пользователем или где он в команде
func (s *Service) ListMyProjects(outerCtx context.Context, userID int64) ([]domain.Project, error) {
	const op = "service.ListMyProjects"
	var projects []domain.Project

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		list, err := tx.ProjectRepo().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		projects = list
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	for i := range projects {
		normalizeGuideStatus(&projects[i])
	}

	return projects, nil
}

// GetProjectDetails возвращает проект с командой, назначениями и ревью.
// Приватный проект видят только автор, участники команды и руководитель.
func (s *Service) GetProjectDetails(outerCtx context.Context, projectID, viewerID int64) (*domain.ProjectDetails, error) {
	const op = "service.GetProjectDetails"
	requestID := logger.GetRequestID(outerCtx)
	details := &domain.ProjectDetails{}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("project_id", projectID).
		Int64("viewer_id", viewerID).
		Msg("fetching project details")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, projectID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("project not found")
		}
		if err != nil {
			return err
		}

		team, err := tx.TeamRepo().GetByProjectID(ctx, projectID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if !canView(project, team, viewerID) {
			return domain.Forbidden("project is private")
		}

		details.Project = *project
		details.Team = team
		details.GuideAssignments = []domain.GuideAssignment{}
		if team != nil {
			assignments, err := tx.GuideAssignmentRepo().ListByTeam(ctx, team.ID)
			if err != nil {
				return err
			}
			details.GuideAssignments = assignments
		}

		reviews, err := tx.ReviewRepo().ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		details.Reviews = reviews
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	normalizeGuideStatus(&details.Project)

	return details, nil
}

// UpdateProjectFull частично обновляет проект. Редактировать могут автор и участники команды.
func (s *Service) UpdateProjectFull(outerCtx context.Context, input *domain.UpdateProjectInput) (*domain.Project, error) {
	const op = "service.UpdateProjectFull"
	requestID := logger.GetRequestID(outerCtx)
	var project *domain.Project

	start := time.Now()
	defer observe("update_project", start)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("project_id", input.ProjectID).
		Int64("user_id", input.UserID).
		Msg("updating project")

	if input.Status != nil && !input.Status.IsValid() {
		return nil, s.formatError(outerCtx, op, domain.Validation("unknown project status"))
	}
	if input.Visibility != nil && !input.Visibility.IsValid() {
		return nil, s.formatError(outerCtx, op, domain.Validation("visibility must be public or private"))
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, s.formatError(outerCtx, op, domain.Validation("project title must not be empty"))
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		p, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("project not found")
		}
		if err != nil {
			return err
		}

		if err := checkEditor(ctx, tx, p, input.UserID); err != nil {
			return err
		}

		// Завершённый проект меняется только вместе с повторной установкой completed
		if p.Status == domain.ProjectStatusCompleted &&
			(input.Status == nil || *input.Status != domain.ProjectStatusCompleted) {
			return domain.InvalidState("completed projects cannot be edited")
		}

		if input.Status != nil && *input.Status != p.Status {
			if err := checkGuideGate(p, *input.Status); err != nil {
				return err
			}
			p.Status = *input.Status
		}

		applyProjectPatch(p, input)

		if err := tx.ProjectRepo().Update(ctx, p); err != nil {
			return err
		}
		project = p
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	normalizeGuideStatus(project)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("project_id", project.ID).
		Str("status", string(project.Status)).
		Msg("successfully updated project")

	return project, nil
}

// AddProjectReview добавляет ревью со следующим порядковым номером
func (s *Service) AddProjectReview(outerCtx context.Context, input *domain.AddProjectReviewInput) (*domain.ProjectReview, error) {
	const op = "service.AddProjectReview"
	requestID := logger.GetRequestID(outerCtx)
	var review *domain.ProjectReview

	if strings.TrimSpace(input.FileURL) == "" {
		return nil, s.formatError(outerCtx, op, domain.Validation("file url is required"))
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		p, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("project not found")
		}
		if err != nil {
			return err
		}

		if err := checkEditor(ctx, tx, p, input.UserID); err != nil {
			return err
		}

		rv, err := tx.ReviewRepo().Create(ctx, p.ID, input.FileURL)
		if err != nil {
			return err
		}
		review = rv
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("project_id", review.ProjectID).
		Int("review_number", review.ReviewNumber).
		Msg("successfully added project review")

	return review, nil
}

// LikeProject увеличивает счётчик лайков
func (s *Service) LikeProject(outerCtx context.Context, projectID int64) (int, error) {
	const op = "service.LikeProject"
	var likes int

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		n, err := tx.ProjectRepo().IncrementLikes(ctx, projectID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("project not found")
		}
		if err != nil {
			return err
		}
		likes = n
		return nil
	})

	if err != nil {
		return 0, s.formatError(outerCtx, op, err)
	}

	return likes, nil
}

// GetStudentStats возвращает статистику студента для дашборда
func (s *Service) GetStudentStats(outerCtx context.Context, userID int64) (*domain.StudentStats, error) {
	const op = "service.GetStudentStats"
	var stats *domain.StudentStats

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		st, err := tx.ProjectRepo().GetStudentStats(ctx, userID)
		if err != nil {
			return err
		}
		stats = st
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return stats, nil
}

// checkEditor - менять проект могут автор и участники команды
func checkEditor(ctx context.Context, tx storage.Tx, p *domain.Project, userID int64) error {
	if p.CreatedBy == userID {
		return nil
	}
	member, err := tx.TeamRepo().IsMember(ctx, p.ID, userID)
	if err != nil {
		return err
	}
	if !member {
		return domain.Forbidden("only the creator or a team member can modify this project")
	}
	return nil
}

// checkGuideGate не даёт вручную продвинуть проект с руководителем дальше pending до его одобрения
func checkGuideGate(p *domain.Project, next domain.ProjectStatus) error {
	if p.GuideID == nil || !next.IsPastGuideGate() {
		return nil
	}
	if p.GuideStatus != domain.GuideStatusApproved {
		return domain.InvalidState("project cannot advance before the guide approves it")
	}
	return nil
}

func applyProjectPatch(p *domain.Project, input *domain.UpdateProjectInput) {
	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
	}
	if input.Abstract != nil {
		p.Abstract = *input.Abstract
	}
	if input.Objective != nil {
		p.Objective = input.Objective
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.HostedLink != nil {
		p.HostedLink = input.HostedLink
	}
	if input.Visibility != nil {
		p.Visibility = *input.Visibility
	}
	if input.IsPublished != nil {
		p.IsPublished = *input.IsPublished
	}
	if input.PaperLink != nil {
		p.PaperLink = input.PaperLink
	}
	if input.ConferenceName != nil {
		p.ConferenceName = input.ConferenceName
	}
	if input.ConferenceYear != nil {
		p.ConferenceYear = input.ConferenceYear
	}
	if input.ConferenceStatus != nil {
		// пустая строка сбрасывает статус конференции
		if *input.ConferenceStatus == "" {
			p.ConferenceStatus = nil
		} else {
			p.ConferenceStatus = input.ConferenceStatus
		}
	}
}

func canView(p *domain.Project, team *domain.Team, viewerID int64) bool {
	if p.Visibility != domain.ProjectVisibilityPrivate {
		return true
	}
	if p.CreatedBy == viewerID || (p.GuideID != nil && *p.GuideID == viewerID) {
		return true
	}
	if team != nil {
		for _, m := range team.Members {
			if m.UserID == viewerID {
				return true
			}
		}
	}
	return false
}

// normalizeGuideStatus - незаданный статус руководителя отображается как NA
func normalizeGuideStatus(p *domain.Project) {
	if p.GuideStatus == "" {
		p.GuideStatus = domain.GuideStatusNA
	}
}
