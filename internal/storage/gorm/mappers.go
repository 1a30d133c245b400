package gorm

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"academicHub/internal/domain"
	"academicHub/internal/storage"
)

// translateError приводит ошибки драйвера к ошибкам storage слоя
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return storage.ErrAlreadyExists
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return storage.ErrConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case storage.UniqueViolation:
			return storage.ErrAlreadyExists
		case storage.ForeignKeyViolation:
			return storage.ErrConflict
		}
	}
	return err
}

func projectToDomain(p *Project) *domain.Project {
	return &domain.Project{
		ID:               p.ProjectID,
		Title:            p.Title,
		Abstract:         p.Abstract,
		Objective:        p.Objective,
		Type:             p.Type,
		Category:         p.Category,
		CreatedBy:        p.CreatedBy,
		BatchID:          p.BatchID,
		DeptID:           p.DeptID,
		GuideID:          p.GuideID,
		Status:           domain.ProjectStatus(p.Status),
		GuideStatus:      domain.GuideStatus(p.GuideStatus),
		Visibility:       domain.ProjectVisibility(p.Visibility),
		IsPublished:      p.IsPublished,
		HostedLink:       p.HostedLink,
		PaperLink:        p.PaperLink,
		ConferenceName:   p.ConferenceName,
		ConferenceYear:   p.ConferenceYear,
		ConferenceStatus: p.ConferenceStatus,
		Likes:            p.Likes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func projectFromDomain(p *domain.Project) *Project {
	return &Project{
		ProjectID:        p.ID,
		Title:            p.Title,
		Abstract:         p.Abstract,
		Objective:        p.Objective,
		Type:             p.Type,
		Category:         p.Category,
		CreatedBy:        p.CreatedBy,
		BatchID:          p.BatchID,
		DeptID:           p.DeptID,
		GuideID:          p.GuideID,
		Status:           string(p.Status),
		GuideStatus:      string(p.GuideStatus),
		Visibility:       string(p.Visibility),
		IsPublished:      p.IsPublished,
		HostedLink:       p.HostedLink,
		PaperLink:        p.PaperLink,
		ConferenceName:   p.ConferenceName,
		ConferenceYear:   p.ConferenceYear,
		ConferenceStatus: p.ConferenceStatus,
		Likes:            p.Likes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func teamRequestToDomain(r *TeamRequest) *domain.TeamRequest {
	members := make([]domain.TeamRequestMember, len(r.Members))
	for i, m := range r.Members {
		members[i] = domain.TeamRequestMember{
			RequestID:   m.RequestID,
			UserID:      m.UserID,
			Role:        domain.MemberRole(m.Role),
			ReplyStatus: domain.MemberReplyStatus(m.ReplyStatus),
			RepliedAt:   m.RepliedAt,
		}
	}

	return &domain.TeamRequest{
		ID:         r.RequestID,
		ProjectID:  r.ProjectID,
		LeaderID:   r.LeaderID,
		TeamName:   r.TeamName,
		GuideID:    r.GuideID,
		Status:     domain.TeamRequestStatus(r.Status),
		GuideStage: domain.GuideStage(r.GuideStage),
		Members:    members,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func teamToDomain(t *Team) *domain.Team {
	members := make([]domain.TeamMember, len(t.Members))
	for i, m := range t.Members {
		members[i] = domain.TeamMember{
			TeamID: m.TeamID,
			UserID: m.UserID,
			Name:   m.User.Name,
			Email:  m.User.Email,
			Role:   domain.MemberRole(m.RoleInTeam),
		}
	}

	return &domain.Team{
		ID:        t.TeamID,
		ProjectID: t.ProjectID,
		Name:      t.TeamName,
		GuideID:   t.GuideID,
		Members:   members,
		CreatedAt: t.CreatedAt,
	}
}

func assignmentToDomain(a *GuideAssignment) domain.GuideAssignment {
	return domain.GuideAssignment{
		ID:         a.AssignmentID,
		TeamID:     a.TeamID,
		GuideID:    a.GuideID,
		Status:     domain.GuideAssignmentStatus(a.Status),
		AssignedOn: a.AssignedOn,
	}
}

func studentToDomain(s *Student) domain.Student {
	return domain.Student{
		UserID:       s.UserID,
		Name:         s.User.Name,
		Email:        s.User.Email,
		BatchID:      s.BatchID,
		DeptID:       s.DeptID,
		EnrollmentNo: s.EnrollmentNo,
	}
}

func facultyToDomain(f *Faculty) domain.Faculty {
	return domain.Faculty{
		UserID:      f.UserID,
		Name:        f.User.Name,
		Email:       f.User.Email,
		DeptID:      f.DeptID,
		Designation: f.Designation,
	}
}
