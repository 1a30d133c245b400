package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListGuideAssignments обрабатывает получение назначений вызывающего руководителя
func (h *Handler) ListGuideAssignments(c *gin.Context) {
	guideID := callerID(c)

	views, err := h.service.ListGuideAssignments(c.Request.Context(), guideID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	items := make([]map[string]interface{}, len(views))
	for i := range views {
		items[i] = mapGuideAssignmentViewToAPI(&views[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"guide_id":    guideID,
		"assignments": items,
	})
}

// ListAvailableGuides обрабатывает получение преподавателей кафедры
func (h *Handler) ListAvailableGuides(c *gin.Context) {
	deptID, ok := queryInt64(c, "dept_id")
	if !ok {
		return
	}

	faculty, err := h.service.ListAvailableGuides(c.Request.Context(), deptID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	items := make([]map[string]interface{}, len(faculty))
	for i := range faculty {
		items[i] = mapFacultyToAPI(&faculty[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"dept_id": deptID,
		"guides":  items,
	})
}
