package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStudentStats обрабатывает получение статистики вызывающего студента
func (h *Handler) GetStudentStats(c *gin.Context) {
	userID := callerID(c)

	stats, err := h.service.GetStudentStats(c.Request.Context(), userID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":              userID,
		"total_projects":       stats.TotalProjects,
		"published_projects":   stats.PublishedProjects,
		"in_progress_projects": stats.InProgressProjects,
		"teams_participated":   stats.TeamsParticipated,
	})
}
