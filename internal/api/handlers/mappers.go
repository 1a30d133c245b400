package handlers

import (
	"academicHub/internal/domain"
)

// mapTeamRequestToAPI конвертирует domain.TeamRequest в API response
func mapTeamRequestToAPI(r *domain.TeamRequest) map[string]interface{} {
	members := make([]map[string]interface{}, len(r.Members))
	for i, m := range r.Members {
		members[i] = map[string]interface{}{
			"user_id":      m.UserID,
			"role":         string(m.Role),
			"reply_status": string(m.ReplyStatus),
			"replied_at":   m.RepliedAt,
		}
	}

	return map[string]interface{}{
		"request_id":  r.ID,
		"project_id":  r.ProjectID,
		"leader_id":   r.LeaderID,
		"team_name":   r.TeamName,
		"guide_id":    r.GuideID,
		"status":      string(r.Status),
		"guide_stage": string(r.GuideStage),
		"members":     members,
		"created_at":  r.CreatedAt,
		"updated_at":  r.UpdatedAt,
	}
}

// mapTeamToAPI конвертирует domain.Team в API response
func mapTeamToAPI(team *domain.Team) map[string]interface{} {
	members := make([]map[string]interface{}, len(team.Members))
	for i, m := range team.Members {
		members[i] = map[string]interface{}{
			"user_id": m.UserID,
			"name":    m.Name,
			"email":   m.Email,
			"role":    string(m.Role),
		}
	}

	return map[string]interface{}{
		"team_id":    team.ID,
		"project_id": team.ProjectID,
		"team_name":  team.Name,
		"guide_id":   team.GuideID,
		"members":    members,
		"created_at": team.CreatedAt,
	}
}

// mapGuideAssignmentToAPI конвертирует domain.GuideAssignment в API response
func mapGuideAssignmentToAPI(a *domain.GuideAssignment) map[string]interface{} {
	return map[string]interface{}{
		"assignment_id": a.ID,
		"team_id":       a.TeamID,
		"guide_id":      a.GuideID,
		"status":        string(a.Status),
		"assigned_on":   a.AssignedOn,
	}
}

// mapGuideAssignmentViewToAPI добавляет данные проекта к назначению для дашборда руководителя
func mapGuideAssignmentViewToAPI(v *domain.GuideAssignmentView) map[string]interface{} {
	m := mapGuideAssignmentToAPI(&v.GuideAssignment)
	m["project_id"] = v.ProjectID
	m["project_title"] = v.ProjectTitle
	m["project_status"] = string(v.ProjectStatus)
	m["team_name"] = v.TeamName
	m["created_by_name"] = v.CreatedByName
	return m
}

// mapProjectToAPI конвертирует domain.Project в API response
func mapProjectToAPI(p *domain.Project) map[string]interface{} {
	guideStatus := string(p.GuideStatus)
	if guideStatus == "" {
		guideStatus = string(domain.GuideStatusNA)
	}

	return map[string]interface{}{
		"project_id":        p.ID,
		"title":             p.Title,
		"abstract":          p.Abstract,
		"objective":         p.Objective,
		"type":              p.Type,
		"category":          p.Category,
		"created_by":        p.CreatedBy,
		"batch_id":          p.BatchID,
		"dept_id":           p.DeptID,
		"guide_id":          p.GuideID,
		"status":            string(p.Status),
		"guide_status":      guideStatus,
		"visibility":        string(p.Visibility),
		"ispublished":       p.IsPublished,
		"hosted_link":       p.HostedLink,
		"paper_link":        p.PaperLink,
		"conference_name":   p.ConferenceName,
		"conference_year":   p.ConferenceYear,
		"conference_status": p.ConferenceStatus,
		"likes":             p.Likes,
		"created_at":        p.CreatedAt,
		"updated_at":        p.UpdatedAt,
	}
}

// mapProjectDetailsToAPI собирает проект с командой, назначениями и ревью
func mapProjectDetailsToAPI(d *domain.ProjectDetails) map[string]interface{} {
	response := mapProjectToAPI(&d.Project)

	if d.Team != nil {
		response["team"] = mapTeamToAPI(d.Team)
	} else {
		response["team"] = nil
	}

	assignments := make([]map[string]interface{}, len(d.GuideAssignments))
	for i := range d.GuideAssignments {
		assignments[i] = mapGuideAssignmentToAPI(&d.GuideAssignments[i])
	}
	response["guide_assignments"] = assignments

	reviews := make([]map[string]interface{}, len(d.Reviews))
	for i := range d.Reviews {
		reviews[i] = mapReviewToAPI(&d.Reviews[i])
	}
	response["reviews"] = reviews

	return response
}

// mapReviewToAPI конвертирует domain.ProjectReview в API response
func mapReviewToAPI(r *domain.ProjectReview) map[string]interface{} {
	return map[string]interface{}{
		"review_id":     r.ID,
		"project_id":    r.ProjectID,
		"review_number": r.ReviewNumber,
		"file_url":      r.FileURL,
		"created_at":    r.CreatedAt,
	}
}

// mapFacultyToAPI конвертирует domain.Faculty в API response
func mapFacultyToAPI(f *domain.Faculty) map[string]interface{} {
	return map[string]interface{}{
		"user_id":     f.UserID,
		"name":        f.Name,
		"email":       f.Email,
		"dept_id":     f.DeptID,
		"designation": f.Designation,
	}
}
