package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"academicHub/internal/api/middleware"
	"academicHub/internal/domain"
)

// CreateTeamRequest обрабатывает создание заявки на команду, лидер - вызывающий студент
func (h *Handler) CreateTeamRequest(c *gin.Context) {
	var req struct {
		ProjectID     int64   `json:"project_id" binding:"required"`
		TeamName      string  `json:"team_name" binding:"required"`
		MemberUserIDs []int64 `json:"member_user_ids" binding:"required"`
		GuideID       *int64  `json:"guide_id"`
	}
	if !bindJSON(c, &req) {
		return
	}

	leaderID := callerID(c)

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Int64("project_id", req.ProjectID).
		Int64("leader_id", leaderID).
		Int("members", len(req.MemberUserIDs)).
		Msg("creating team request")

	request, err := h.service.CreateTeamRequest(c.Request.Context(), &domain.CreateTeamRequestInput{
		ProjectID:     req.ProjectID,
		LeaderID:      leaderID,
		TeamName:      req.TeamName,
		MemberUserIDs: req.MemberUserIDs,
		GuideID:       req.GuideID,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"team_request": mapTeamRequestToAPI(request),
	})
}

// ReplyToTeamRequest обрабатывает ответ приглашённого участника
func (h *Handler) ReplyToTeamRequest(c *gin.Context) {
	var req struct {
		RequestID int64  `json:"request_id" binding:"required"`
		Reply     string `json:"reply" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	userID := callerID(c)

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Int64("team_request_id", req.RequestID).
		Int64("user_id", userID).
		Str("reply", req.Reply).
		Msg("replying to team request")

	result, err := h.service.ReplyToTeamRequest(c.Request.Context(), &domain.ReplyToTeamRequestInput{
		RequestID: req.RequestID,
		UserID:    userID,
		Reply:     domain.MemberReplyStatus(req.Reply),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := gin.H{
		"team_request": mapTeamRequestToAPI(&result.Request),
	}
	if result.Team != nil {
		response["team"] = mapTeamToAPI(result.Team)
	}
	if result.GuideAssignment != nil {
		response["guide_assignment"] = mapGuideAssignmentToAPI(result.GuideAssignment)
	}

	c.JSON(http.StatusOK, response)
}

// CancelTeamRequest обрабатывает отзыв заявки лидером
func (h *Handler) CancelTeamRequest(c *gin.Context) {
	var req struct {
		RequestID int64 `json:"request_id" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.service.CancelTeamRequest(c.Request.Context(), &domain.CancelTeamRequestInput{
		RequestID: req.RequestID,
		LeaderID:  callerID(c),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Int64("team_request_id", request.ID).
		Msg("team request cancelled")

	c.JSON(http.StatusOK, gin.H{
		"team_request": mapTeamRequestToAPI(request),
	})
}

// DecideGuideAssignment обрабатывает решение руководителя, руководитель - вызывающий преподаватель
func (h *Handler) DecideGuideAssignment(c *gin.Context) {
	var req struct {
		RequestID int64  `json:"request_id" binding:"required"`
		Decision  string `json:"decision" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	guideID := callerID(c)

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Int64("team_request_id", req.RequestID).
		Int64("guide_id", guideID).
		Str("decision", req.Decision).
		Msg("applying guide decision")

	result, err := h.service.DecideGuideAssignment(c.Request.Context(), &domain.GuideDecisionInput{
		RequestID: req.RequestID,
		GuideID:   guideID,
		Decision:  domain.GuideDecision(req.Decision),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team_request":     mapTeamRequestToAPI(&result.Request),
		"guide_assignment": mapGuideAssignmentToAPI(&result.Assignment),
		"project":          mapProjectToAPI(&result.Project),
	})
}

// GetTeamRequest обрабатывает получение заявки по ID
func (h *Handler) GetTeamRequest(c *gin.Context) {
	requestID, ok := queryInt64(c, "request_id")
	if !ok {
		return
	}

	request, err := h.service.GetTeamRequest(c.Request.Context(), requestID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team_request": mapTeamRequestToAPI(request),
	})
}

// ListMyTeamRequests обрабатывает получение заявок, где пользователь лидер или приглашённый
func (h *Handler) ListMyTeamRequests(c *gin.Context) {
	userID := callerID(c)

	requests, err := h.service.ListTeamRequestsForUser(c.Request.Context(), userID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	items := make([]map[string]interface{}, len(requests))
	for i := range requests {
		items[i] = mapTeamRequestToAPI(&requests[i])
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Int64("user_id", userID).
		Int("count", len(items)).
		Msg("listed team requests")

	c.JSON(http.StatusOK, gin.H{
		"user_id":       userID,
		"team_requests": items,
	})
}
