package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/metrics"
	"academicHub/internal/notify"
	"academicHub/internal/storage"
)

const (
	minTeamSize = 2
	maxTeamSize = 4
)

// CreateTeamRequest создаёт заявку на формирование команды. Лидер добавляется
// в заявку отдельной строкой с ролью leader и тоже должен принять её.
func (s *Service) CreateTeamRequest(outerCtx context.Context, input *domain.CreateTeamRequestInput) (*domain.TeamRequest, error) {
	const op = "service.CreateTeamRequest"
	requestID := logger.GetRequestID(outerCtx)
	var request *domain.TeamRequest

	start := time.Now()
	defer observe("create_team_request", start)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("project_id", input.ProjectID).
		Int64("leader_id", input.LeaderID).
		Int("members_count", len(input.MemberUserIDs)).
		Msg("creating team request")

	if err := validateTeamComposition(input); err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("project not found")
		}
		if err != nil {
			return err
		}

		// У проекта не должно быть команды и другой ожидающей заявки
		_, err = tx.TeamRepo().GetByProjectID(ctx, project.ID)
		switch {
		case err == nil:
			return domain.InvalidState("project already has a team")
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		pending, err := tx.TeamRequestRepo().HasPendingForProject(ctx, project.ID)
		if err != nil {
			return err
		}
		if pending {
			return domain.InvalidState("project already has a pending team request")
		}

		leader, err := loadLeader(ctx, tx, input.LeaderID)
		if err != nil {
			return err
		}
		// Команду для проекта собирает только его автор
		if leader.UserID != project.CreatedBy {
			return domain.Forbidden("only the project creator can propose a team")
		}

		if err := checkMembers(ctx, tx, leader, input.MemberUserIDs); err != nil {
			return err
		}

		guideID, err := resolveGuide(ctx, tx, project, input.GuideID)
		if err != nil {
			return err
		}

		members := make([]domain.TeamRequestMember, 0, len(input.MemberUserIDs)+1)
		members = append(members, domain.TeamRequestMember{
			UserID:      leader.UserID,
			Role:        domain.MemberRoleLeader,
			ReplyStatus: domain.MemberReplyPending,
		})
		for _, id := range input.MemberUserIDs {
			members = append(members, domain.TeamRequestMember{
				UserID:      id,
				Role:        domain.MemberRoleMember,
				ReplyStatus: domain.MemberReplyPending,
			})
		}

		request = &domain.TeamRequest{
			ProjectID:  project.ID,
			LeaderID:   leader.UserID,
			TeamName:   strings.TrimSpace(input.TeamName),
			GuideID:    guideID,
			Status:     domain.TeamRequestStatusPending,
			GuideStage: domain.GuideStageNone,
			Members:    members,
		}

		return tx.TeamRequestRepo().Create(ctx, request)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.TeamRequestCreatedTotal.Inc()

	s.publish(outerCtx, notify.Event{
		Type:       notify.EventTeamRequestCreated,
		RequestID:  request.ID,
		ProjectID:  request.ProjectID,
		UserID:     request.LeaderID,
		Status:     string(request.Status),
		Recipients: invitedUserIDs(request),
	})

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("team_request_id", request.ID).
		Int("members_count", len(request.Members)).
		Msg("successfully created team request")

	return request, nil
}

// ReplyToTeamRequest записывает ответ участника. Отказ закрывает заявку сразу,
// последнее согласие материализует команду в той же транзакции.
func (s *Service) ReplyToTeamRequest(outerCtx context.Context, input *domain.ReplyToTeamRequestInput) (*domain.TeamRequestReplyResult, error) {
	const op = "service.ReplyToTeamRequest"
	requestID := logger.GetRequestID(outerCtx)
	result := &domain.TeamRequestReplyResult{}

	start := time.Now()
	defer observe("reply_team_request", start)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("team_request_id", input.RequestID).
		Int64("user_id", input.UserID).
		Str("reply", string(input.Reply)).
		Msg("replying to team request")

	if !input.Reply.IsValidReply() {
		return nil, s.formatError(outerCtx, op, domain.Validation("reply must be accepted or declined"))
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		// Блокируем строку заявки до конца транзакции, статусы участников читаем после блокировки
		req, err := tx.TeamRequestRepo().GetByIDForUpdate(ctx, input.RequestID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("team request not found")
		}
		if err != nil {
			return err
		}

		if req.Status != domain.TeamRequestStatusPending {
			return domain.InvalidState(fmt.Sprintf("team request is already %s", req.Status))
		}

		member := findRequestMember(req, input.UserID)
		if member == nil {
			return domain.NotFound("user is not a member of this team request")
		}
		if member.ReplyStatus != domain.MemberReplyPending {
			return domain.InvalidState("member has already replied to this team request")
		}

		repliedAt := s.now()
		if err := tx.TeamRequestRepo().UpdateMemberReply(ctx, req.ID, input.UserID, input.Reply, repliedAt); err != nil {
			return err
		}
		member.ReplyStatus = input.Reply
		member.RepliedAt = &repliedAt

		switch {
		case input.Reply == domain.MemberReplyDeclined:
			if err := transitionRequest(req, domain.TeamRequestStatusRejected); err != nil {
				return err
			}
		case allAccepted(req.Members):
			if err := transitionRequest(req, domain.TeamRequestStatusAccepted); err != nil {
				return err
			}
			team, assignment, err := s.materializeTeam(ctx, tx, req)
			if err != nil {
				return err
			}
			result.Team = team
			result.GuideAssignment = assignment
		default:
			result.Request = *req
			return nil
		}

		if err := tx.TeamRequestRepo().UpdateStatus(ctx, req); err != nil {
			return err
		}

		result.Request = *req
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	s.recordReply(outerCtx, input, result)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("team_request_id", result.Request.ID).
		Str("status", string(result.Request.Status)).
		Str("guide_stage", string(result.Request.GuideStage)).
		Bool("team_materialized", result.Team != nil).
		Msg("successfully recorded team request reply")

	return result, nil
}

// CancelTeamRequest отзывает ожидающую заявку, доступно только лидеру
func (s *Service) CancelTeamRequest(outerCtx context.Context, input *domain.CancelTeamRequestInput) (*domain.TeamRequest, error) {
	const op = "service.CancelTeamRequest"
	requestID := logger.GetRequestID(outerCtx)
	var request *domain.TeamRequest

	start := time.Now()
	defer observe("cancel_team_request", start)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("team_request_id", input.RequestID).
		Int64("leader_id", input.LeaderID).
		Msg("cancelling team request")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		req, err := tx.TeamRequestRepo().GetByIDForUpdate(ctx, input.RequestID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("team request not found")
		}
		if err != nil {
			return err
		}

		if req.LeaderID != input.LeaderID {
			return domain.Forbidden("only the team leader can cancel the request")
		}
		if err := transitionRequest(req, domain.TeamRequestStatusCancelled); err != nil {
			return err
		}
		if err := tx.TeamRequestRepo().UpdateStatus(ctx, req); err != nil {
			return err
		}

		request = req
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.TeamRequestClosedTotal.WithLabelValues(string(request.Status)).Inc()

	s.publish(outerCtx, notify.Event{
		Type:       notify.EventTeamRequestCancelled,
		RequestID:  request.ID,
		ProjectID:  request.ProjectID,
		UserID:     request.LeaderID,
		Status:     string(request.Status),
		Recipients: invitedUserIDs(request),
	})

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("team_request_id", request.ID).
		Msg("successfully cancelled team request")

	return request, nil
}

// GetTeamRequest возвращает заявку с участниками
func (s *Service) GetTeamRequest(outerCtx context.Context, teamRequestID int64) (*domain.TeamRequest, error) {
	const op = "service.GetTeamRequest"
	requestID := logger.GetRequestID(outerCtx)
	var request *domain.TeamRequest

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("team_request_id", teamRequestID).
		Msg("fetching team request")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		req, err := tx.TeamRequestRepo().GetByID(ctx, teamRequestID)
		if errors.Is(err, storage.ErrNotFound) {
			return domain.NotFound("team request not found")
		}
		if err != nil {
			return err
		}
		request = req
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return request, nil
}

// ListTeamRequestsForUser возвращает заявки, где пользователь лидер или приглашённый
func (s *Service) ListTeamRequestsForUser(outerCtx context.Context, userID int64) ([]domain.TeamRequest, error) {
	const op = "service.ListTeamRequestsForUser"
	requestID := logger.GetRequestID(outerCtx)
	var requests []domain.TeamRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		list, err := tx.TeamRequestRepo().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		requests = list
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("user_id", userID).
		Int("count", len(requests)).
		Msg("successfully listed team requests for user")

	return requests, nil
}

// materializeTeam создаёт команду и применяет побочные эффекты к проекту.
// С руководителем проект ждёт его решения, без руководителя одобряется сразу.
func (s *Service) materializeTeam(ctx context.Context, tx storage.Tx, req *domain.TeamRequest) (*domain.Team, *domain.GuideAssignment, error) {
	project, err := tx.ProjectRepo().GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	team := &domain.Team{
		ProjectID: req.ProjectID,
		Name:      req.TeamName,
		GuideID:   req.GuideID,
		Members:   make([]domain.TeamMember, 0, len(req.Members)),
	}
	for _, m := range req.Members {
		team.Members = append(team.Members, domain.TeamMember{UserID: m.UserID, Role: m.Role})
	}

	if err := tx.TeamRepo().Create(ctx, team); err != nil {
		return nil, nil, err
	}

	var assignment *domain.GuideAssignment
	if req.HasGuide() {
		if err := transitionGuideStage(req, domain.GuideStageAwaitingGuide); err != nil {
			return nil, nil, err
		}

		assignment = &domain.GuideAssignment{
			TeamID:  team.ID,
			GuideID: *req.GuideID,
			Status:  domain.GuideAssignmentPending,
		}
		if err := tx.GuideAssignmentRepo().Create(ctx, assignment); err != nil {
			return nil, nil, err
		}

		project.Status = domain.ProjectStatusPending
		project.GuideStatus = domain.GuideStatusPending
		project.GuideID = req.GuideID
	} else {
		if err := transitionGuideStage(req, domain.GuideStageAutoApproved); err != nil {
			return nil, nil, err
		}

		project.Status = domain.ProjectStatusApproved
		project.GuideStatus = domain.GuideStatusNA
	}

	if err := tx.ProjectRepo().Update(ctx, project); err != nil {
		return nil, nil, err
	}

	log.Info().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "service").
		Int64("project_id", project.ID).
		Int64("team_id", team.ID).
		Str("project_status", string(project.Status)).
		Msg("team materialized")

	return team, assignment, nil
}

// recordReply обновляет метрики и публикует события после коммита ответа
func (s *Service) recordReply(ctx context.Context, input *domain.ReplyToTeamRequestInput, result *domain.TeamRequestReplyResult) {
	req := result.Request
	metrics.TeamRequestRepliesTotal.WithLabelValues(string(input.Reply)).Inc()

	events := []notify.Event{{
		Type:       notify.EventTeamRequestReplied,
		RequestID:  req.ID,
		ProjectID:  req.ProjectID,
		UserID:     input.UserID,
		Status:     string(input.Reply),
		Recipients: []int64{req.LeaderID},
	}}

	if req.Status.IsTerminal() {
		metrics.TeamRequestClosedTotal.WithLabelValues(string(req.Status)).Inc()
	}

	if result.Team != nil {
		metrics.TeamMaterializedTotal.WithLabelValues(strconv.FormatBool(req.HasGuide())).Inc()
		metrics.TeamSize.Observe(float64(len(result.Team.Members)))

		recipients := make([]int64, 0, len(result.Team.Members)+1)
		for _, m := range result.Team.Members {
			recipients = append(recipients, m.UserID)
		}
		if req.HasGuide() {
			recipients = append(recipients, *req.GuideID)
		}

		events = append(events, notify.Event{
			Type:       notify.EventTeamMaterialized,
			RequestID:  req.ID,
			ProjectID:  req.ProjectID,
			UserID:     req.LeaderID,
			Status:     string(req.GuideStage),
			Recipients: recipients,
		})
	}

	s.publish(ctx, events...)
}

// loadLeader проверяет что лидер существует и является студентом
func loadLeader(ctx context.Context, tx storage.Tx, leaderID int64) (*domain.Student, error) {
	leader, err := tx.UserRepo().GetStudent(ctx, leaderID)
	if err == nil {
		return leader, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if _, err := tx.UserRepo().GetByID(ctx, leaderID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, domain.NotFound("leader not found")
		}
		return nil, err
	}
	return nil, domain.Validation("team leader must be a student")
}

// checkMembers проверяет что все участники - студенты того же потока и кафедры что и лидер
func checkMembers(ctx context.Context, tx storage.Tx, leader *domain.Student, memberIDs []int64) error {
	students, err := tx.UserRepo().GetStudents(ctx, memberIDs)
	if err != nil {
		return err
	}

	found := make(map[int64]domain.Student, len(students))
	for _, st := range students {
		found[st.UserID] = st
	}

	for _, id := range memberIDs {
		st, ok := found[id]
		if !ok {
			return domain.NotFound(fmt.Sprintf("student %d not found", id))
		}
		if st.BatchID != leader.BatchID || st.DeptID != leader.DeptID {
			return domain.Validation(fmt.Sprintf("student %d is not in the leader's batch and department", id))
		}
	}
	return nil
}

// resolveGuide возвращает руководителя заявки: явно переданного преподавателя
// кафедры проекта или руководителя, уже записанного в проекте
func resolveGuide(ctx context.Context, tx storage.Tx, project *domain.Project, guideID *int64) (*int64, error) {
	if guideID == nil {
		return project.GuideID, nil
	}

	guide, err := tx.UserRepo().GetFaculty(ctx, *guideID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, domain.Validation("guide must be a faculty member")
	}
	if err != nil {
		return nil, err
	}
	if guide.DeptID != project.DeptID {
		return nil, domain.Validation("guide must belong to the project's department")
	}

	id := guide.UserID
	return &id, nil
}

// validateTeamComposition проверяет входные данные заявки без обращения к хранилищу
func validateTeamComposition(input *domain.CreateTeamRequestInput) error {
	if strings.TrimSpace(input.TeamName) == "" {
		return domain.Validation("team name is required")
	}

	seen := make(map[int64]struct{}, len(input.MemberUserIDs))
	for _, id := range input.MemberUserIDs {
		if id == input.LeaderID {
			return domain.Validation("member list must not include the leader")
		}
		if _, dup := seen[id]; dup {
			return domain.Validation(fmt.Sprintf("duplicate member %d", id))
		}
		seen[id] = struct{}{}
	}

	size := len(input.MemberUserIDs) + 1
	if size < minTeamSize || size > maxTeamSize {
		return domain.Validation(fmt.Sprintf("team size must be between %d and %d including the leader", minTeamSize, maxTeamSize))
	}
	return nil
}

func transitionRequest(req *domain.TeamRequest, next domain.TeamRequestStatus) error {
	if !req.Status.CanTransitionTo(next) {
		return domain.InvalidState(fmt.Sprintf("team request cannot move from %s to %s", req.Status, next))
	}
	req.Status = next
	return nil
}

func transitionGuideStage(req *domain.TeamRequest, next domain.GuideStage) error {
	if !req.GuideStage.CanTransitionTo(next) {
		return domain.InvalidState(fmt.Sprintf("guide stage cannot move from %s to %s", req.GuideStage, next))
	}
	req.GuideStage = next
	return nil
}

func findRequestMember(req *domain.TeamRequest, userID int64) *domain.TeamRequestMember {
	for i := range req.Members {
		if req.Members[i].UserID == userID {
			return &req.Members[i]
		}
	}
	return nil
}

func allAccepted(members []domain.TeamRequestMember) bool {
	for _, m := range members {
		if m.ReplyStatus != domain.MemberReplyAccepted {
			return false
		}
	}
	return len(members) > 0
}

// invitedUserIDs - участники заявки кроме лидера
func invitedUserIDs(req *domain.TeamRequest) []int64 {
	ids := make([]int64, 0, len(req.Members))
	for _, m := range req.Members {
		if m.Role != domain.MemberRoleLeader {
			ids = append(ids, m.UserID)
		}
	}
	return ids
}
