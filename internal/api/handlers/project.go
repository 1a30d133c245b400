package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"academicHub/internal/api/middleware"
	"academicHub/internal/domain"
)

// CreateProject обрабатывает создание проекта студентом
func (h *Handler) CreateProject(c *gin.Context) {
	var req struct {
		Title      string  `json:"title" binding:"required"`
		Abstract   string  `json:"abstract" binding:"required"`
		Type       string  `json:"type" binding:"required"`
		Category   string  `json:"category" binding:"required"`
		Objective  *string `json:"objective"`
		HostedLink *string `json:"hosted_link"`
		Visibility string  `json:"visibility"`
		GuideID    *int64  `json:"guide_id"`
	}
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), &domain.CreateProjectInput{
		CreatorID:  callerID(c),
		Title:      req.Title,
		Abstract:   req.Abstract,
		Type:       req.Type,
		Category:   req.Category,
		Objective:  req.Objective,
		HostedLink: req.HostedLink,
		Visibility: domain.ProjectVisibility(req.Visibility),
		GuideID:    req.GuideID,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Int64("project_id", project.ID).
		Str("status", string(project.Status)).
		Msg("successfully created project")

	c.JSON(http.StatusCreated, gin.H{
		"project": mapProjectToAPI(project),
	})
}

// ListMyProjects обрабатывает получение проектов пользователя
func (h *Handler) ListMyProjects(c *gin.Context) {
	projects, err := h.service.ListMyProjects(c.Request.Context(), callerID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	items := make([]map[string]interface{}, len(projects))
	for i := range projects {
		items[i] = mapProjectToAPI(&projects[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": items,
	})
}

// GetProjectDetails обрабатывает получение проекта с командой, назначениями и ревью
func (h *Handler) GetProjectDetails(c *gin.Context) {
	projectID, ok := queryInt64(c, "project_id")
	if !ok {
		return
	}

	details, err := h.service.GetProjectDetails(c.Request.Context(), projectID, callerID(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": mapProjectDetailsToAPI(details),
	})
}

// UpdateProject обрабатывает частичное обновление проекта
func (h *Handler) UpdateProject(c *gin.Context) {
	var req struct {
		ProjectID        int64   `json:"project_id" binding:"required"`
		Title            *string `json:"title"`
		Abstract         *string `json:"abstract"`
		Objective        *string `json:"objective"`
		Category         *string `json:"category"`
		Status           *string `json:"status"`
		HostedLink       *string `json:"hosted_link"`
		Visibility       *string `json:"visibility"`
		IsPublished      *bool   `json:"ispublished"`
		PaperLink        *string `json:"paper_link"`
		ConferenceName   *string `json:"conference_name"`
		ConferenceYear   *int    `json:"conference_year"`
		ConferenceStatus *string `json:"conference_status"`
	}
	if !bindJSON(c, &req) {
		return
	}

	input := &domain.UpdateProjectInput{
		ProjectID:        req.ProjectID,
		UserID:           callerID(c),
		Title:            req.Title,
		Abstract:         req.Abstract,
		Objective:        req.Objective,
		Category:         req.Category,
		HostedLink:       req.HostedLink,
		IsPublished:      req.IsPublished,
		PaperLink:        req.PaperLink,
		ConferenceName:   req.ConferenceName,
		ConferenceYear:   req.ConferenceYear,
		ConferenceStatus: req.ConferenceStatus,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		input.Status = &status
	}
	if req.Visibility != nil {
		visibility := domain.ProjectVisibility(*req.Visibility)
		input.Visibility = &visibility
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Int64("project_id", req.ProjectID).
		Int64("user_id", input.UserID).
		Msg("updating project")

	project, err := h.service.UpdateProjectFull(c.Request.Context(), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": mapProjectToAPI(project),
	})
}

// AddProjectReview обрабатывает загрузку ревью проекта
func (h *Handler) AddProjectReview(c *gin.Context) {
	var req struct {
		ProjectID int64  `json:"project_id" binding:"required"`
		FileURL   string `json:"file_url" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.service.AddProjectReview(c.Request.Context(), &domain.AddProjectReviewInput{
		ProjectID: req.ProjectID,
		UserID:    callerID(c),
		FileURL:   req.FileURL,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review": mapReviewToAPI(review),
	})
}

// LikeProject обрабатывает лайк проекта
func (h *Handler) LikeProject(c *gin.Context) {
	var req struct {
		ProjectID int64 `json:"project_id" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	likes, err := h.service.LikeProject(c.Request.Context(), req.ProjectID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id": req.ProjectID,
		"likes":      likes,
	})
}
