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

// DecideGuideAssignment применяет решение руководителя к принятой заявке.
// При отказе команда остаётся, отклоняется только проект.
func (s *Service) DecideGuideAssignment(outerCtx context.Context, input *domain.GuideDecisionInput) (*domain.GuideDecisionResult, error) {
	const op = "service.DecideGuideAssignment"
	requestID := logger.GetRequestID(outerCtx)
	var result *domain.GuideDecisionResult
	var team *domain.Team

	start := time.Now()
	defer observe("decide_guide_assignment", start)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("team_request_id", input.RequestID).
		Int64("guide_id", input.GuideID).
		Str("decision", string(input.Decision)).
		Msg("applying guide decision")

	if !input.Decision.IsValid() {
		return nil, s.formatError(outerCtx, op, domain.Validation("decision must be approve or reject"))
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		req, err := tx.TeamRequestRepo().GetByIDForUpdate(ctx, input.RequestID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("team request not found")
		}
		if err != nil {
			return err
		}

		if req.Status != domain.TeamRequestStatusAccepted || req.GuideStage != domain.GuideStageAwaitingGuide {
			return domain.InvalidState("team request is not awaiting a guide decision")
		}

		t, err := tx.TeamRepo().GetByProjectID(ctx, req.ProjectID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.InvalidState("project has no team")
		}
		if err != nil {
			return err
		}
		team = t

		assignment, err := tx.GuideAssignmentRepo().GetPending(ctx, team.ID, input.GuideID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.InvalidState("no pending assignment for this guide")
		}
		if err != nil {
			return err
		}

		project, err := tx.ProjectRepo().GetByID(ctx, req.ProjectID)
		if err != nil {
			return err
		}

		nextAssignment := domain.GuideAssignmentApproved
		nextStage := domain.GuideStageApproved
		project.Status = domain.ProjectStatusApproved
		project.GuideStatus = domain.GuideStatusApproved
		if input.Decision == domain.GuideDecisionReject {
			nextAssignment = domain.GuideAssignmentRejected
			nextStage = domain.GuideStageRejected
			project.Status = domain.ProjectStatusRejected
			project.GuideStatus = domain.GuideStatusRejected
		}

		if !assignment.Status.CanTransitionTo(nextAssignment) {
			return domain.InvalidState("guide assignment is already decided")
		}
		assignment.Status = nextAssignment
		if err := transitionGuideStage(req, nextStage); err != nil {
			return err
		}

		if err := tx.GuideAssignmentRepo().UpdateStatus(ctx, assignment); err != nil {
			return err
		}
		if err := tx.ProjectRepo().Update(ctx, project); err != nil {
			return err
		}
		if err := tx.TeamRequestRepo().UpdateStatus(ctx, req); err != nil {
			return err
		}

		result = &domain.GuideDecisionResult{
			Request:    *req,
			Assignment: *assignment,
			Project:    *project,
		}
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.GuideDecisionsTotal.WithLabelValues(string(input.Decision)).Inc()

	recipients := make([]int64, 0, len(team.Members))
	for _, m := range team.Members {
		recipients = append(recipients, m.UserID)
	}
	s.publish(outerCtx, notify.Event{
		Type:       notify.EventGuideDecided,
		RequestID:  result.Request.ID,
		ProjectID:  result.Project.ID,
		UserID:     input.GuideID,
		Status:     string(result.Assignment.Status),
		Recipients: recipients,
	})

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("project_id", result.Project.ID).
		Str("project_status", string(result.Project.Status)).
		Str("assignment_status", string(result.Assignment.Status)).
		Msg("successfully applied guide decision")

	return result, nil
}

// ListGuideAssignments возвращает назначения руководителя для его дашборда
func (s *Service) ListGuideAssignments(outerCtx context.Context, guideID int64) ([]domain.GuideAssignmentView, error) {
	const op = "service.ListGuideAssignments"
	requestID := logger.GetRequestID(outerCtx)
	var views []domain.GuideAssignmentView

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.UserRepo().GetFaculty(ctx, guideID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.NotFound("guide not found")
			}
			return err
		}

		list, err := tx.GuideAssignmentRepo().ListByGuide(ctx, guideID)
		if err != nil {
			return err
		}
		views = list
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("guide_id", guideID).
		Int("count", len(views)).
		Msg("successfully listed guide assignments")

	return views, nil
}

// ListAvailableGuides возвращает преподавателей кафедры
func (s *Service) ListAvailableGuides(outerCtx context.Context, deptID int64) ([]domain.Faculty, error) {
	const op = "service.ListAvailableGuides"
	var guides []domain.Faculty

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		list, err := tx.UserRepo().ListFacultyByDept(ctx, deptID)
		if err != nil {
			return err
		}
		guides = list
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return guides, nil
}
