package memory

import (
	"context"
	"sort"
	"time"

	"academicHub/internal/domain"
	"academicHub/internal/storage"
)

type projectRepository struct{ tx *transaction }

func (r *projectRepository) Create(_ context.Context, project *domain.Project) error {
	d := r.tx.data
	d.nextProjectID++
	now := r.tx.now()

	project.ID = d.nextProjectID
	project.CreatedAt = now
	project.UpdatedAt = now
	d.projects[project.ID] = *project
	return nil
}

func (r *projectRepository) GetByID(_ context.Context, projectID int64) (*domain.Project, error) {
	p, ok := r.tx.data.projects[projectID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (r *projectRepository) Update(_ context.Context, project *domain.Project) error {
	if _, ok := r.tx.data.projects[project.ID]; !ok {
		return storage.ErrNotFound
	}
	project.UpdatedAt = r.tx.now()
	r.tx.data.projects[project.ID] = *project
	return nil
}

func (r *projectRepository) ListByUser(_ context.Context, userID int64) ([]domain.Project, error) {
	projects := make([]domain.Project, 0)
	for _, p := range r.tx.data.projects {
		if p.CreatedBy == userID || r.tx.isTeamMember(p.ID, userID) {
			projects = append(projects, p)
		}
	}
	sortProjects(projects)
	return projects, nil
}

func (r *projectRepository) IncrementLikes(_ context.Context, projectID int64) (int, error) {
	p, ok := r.tx.data.projects[projectID]
	if !ok {
		return 0, storage.ErrNotFound
	}
	p.Likes++
	r.tx.data.projects[projectID] = p
	return p.Likes, nil
}

func (r *projectRepository) GetStudentStats(_ context.Context, userID int64) (*domain.StudentStats, error) {
	stats := &domain.StudentStats{}
	for _, p := range r.tx.data.projects {
		if p.CreatedBy != userID && !r.tx.isTeamMember(p.ID, userID) {
			continue
		}
		stats.TotalProjects++
		if p.IsPublished {
			stats.PublishedProjects++
		}
		if p.Status == domain.ProjectStatusInProgress {
			stats.InProgressProjects++
		}
	}
	for _, t := range r.tx.data.teams {
		for _, m := range t.Members {
			if m.UserID == userID {
				stats.TeamsParticipated++
				break
			}
		}
	}
	return stats, nil
}

type teamRequestRepository struct{ tx *transaction }

func (r *teamRequestRepository) Create(_ context.Context, request *domain.TeamRequest) error {
	d := r.tx.data
	d.nextRequestID++
	now := r.tx.now()

	request.ID = d.nextRequestID
	request.CreatedAt = now
	request.UpdatedAt = now
	for i := range request.Members {
		request.Members[i].RequestID = request.ID
	}

	stored := *request
	stored.Members = append([]domain.TeamRequestMember(nil), request.Members...)
	d.requests[request.ID] = stored
	return nil
}

func (r *teamRequestRepository) GetByID(_ context.Context, requestID int64) (*domain.TeamRequest, error) {
	req, ok := r.tx.data.requests[requestID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	req.Members = append([]domain.TeamRequestMember(nil), req.Members...)
	return &req, nil
}

// GetByIDForUpdate - единицы работы уже сериализованы мьютексом Store
func (r *teamRequestRepository) GetByIDForUpdate(ctx context.Context, requestID int64) (*domain.TeamRequest, error) {
	return r.GetByID(ctx, requestID)
}

func (r *teamRequestRepository) HasPendingForProject(_ context.Context, projectID int64) (bool, error) {
	for _, req := range r.tx.data.requests {
		if req.ProjectID == projectID && req.Status == domain.TeamRequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *teamRequestRepository) UpdateStatus(_ context.Context, request *domain.TeamRequest) error {
	stored, ok := r.tx.data.requests[request.ID]
	if !ok {
		return storage.ErrNotFound
	}
	stored.Status = request.Status
	stored.GuideStage = request.GuideStage
	stored.UpdatedAt = r.tx.now()
	request.UpdatedAt = stored.UpdatedAt
	r.tx.data.requests[request.ID] = stored
	return nil
}

func (r *teamRequestRepository) UpdateMemberReply(_ context.Context, requestID, userID int64, reply domain.MemberReplyStatus, repliedAt time.Time) error {
	stored, ok := r.tx.data.requests[requestID]
	if !ok {
		return storage.ErrNotFound
	}
	for i := range stored.Members {
		if stored.Members[i].UserID == userID {
			at := repliedAt
			stored.Members[i].ReplyStatus = reply
			stored.Members[i].RepliedAt = &at
			r.tx.data.requests[requestID] = stored
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r *teamRequestRepository) ListByUser(_ context.Context, userID int64) ([]domain.TeamRequest, error) {
	requests := make([]domain.TeamRequest, 0)
	for _, req := range r.tx.data.requests {
		involved := req.LeaderID == userID
		for _, m := range req.Members {
			if m.UserID == userID {
				involved = true
			}
		}
		if involved {
			req.Members = append([]domain.TeamRequestMember(nil), req.Members...)
			requests = append(requests, req)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID > requests[j].ID })
	return requests, nil
}

type teamRepository struct{ tx *transaction }

func (r *teamRepository) Create(_ context.Context, team *domain.Team) error {
	d := r.tx.data
	for _, t := range d.teams {
		if t.ProjectID == team.ProjectID {
			return storage.ErrAlreadyExists
		}
	}

	d.nextTeamID++
	team.ID = d.nextTeamID
	team.CreatedAt = r.tx.now()
	for i := range team.Members {
		team.Members[i].TeamID = team.ID
		if u, ok := d.users[team.Members[i].UserID]; ok {
			team.Members[i].Name = u.Name
			team.Members[i].Email = u.Email
		}
	}

	stored := *team
	stored.Members = append([]domain.TeamMember(nil), team.Members...)
	d.teams[team.ID] = stored
	return nil
}

func (r *teamRepository) GetByProjectID(_ context.Context, projectID int64) (*domain.Team, error) {
	for _, t := range r.tx.data.teams {
		if t.ProjectID == projectID {
			t.Members = append([]domain.TeamMember(nil), t.Members...)
			return &t, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *teamRepository) IsMember(_ context.Context, projectID, userID int64) (bool, error) {
	return r.tx.isTeamMember(projectID, userID), nil
}

type guideAssignmentRepository struct{ tx *transaction }

func (r *guideAssignmentRepository) Create(_ context.Context, assignment *domain.GuideAssignment) error {
	d := r.tx.data
	d.nextAssignmentID++
	assignment.ID = d.nextAssignmentID
	assignment.AssignedOn = r.tx.now()
	d.assignments[assignment.ID] = *assignment
	return nil
}

func (r *guideAssignmentRepository) GetPending(_ context.Context, teamID, guideID int64) (*domain.GuideAssignment, error) {
	for _, a := range r.tx.data.assignments {
		if a.TeamID == teamID && a.GuideID == guideID && a.Status == domain.GuideAssignmentPending {
			return &a, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *guideAssignmentRepository) UpdateStatus(_ context.Context, assignment *domain.GuideAssignment) error {
	stored, ok := r.tx.data.assignments[assignment.ID]
	if !ok {
		return storage.ErrNotFound
	}
	stored.Status = assignment.Status
	r.tx.data.assignments[assignment.ID] = stored
	return nil
}

func (r *guideAssignmentRepository) ListByTeam(_ context.Context, teamID int64) ([]domain.GuideAssignment, error) {
	assignments := make([]domain.GuideAssignment, 0)
	for _, a := range r.tx.data.assignments {
		if a.TeamID == teamID {
			assignments = append(assignments, a)
		}
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].ID > assignments[j].ID })
	return assignments, nil
}

func (r *guideAssignmentRepository) ListByGuide(_ context.Context, guideID int64) ([]domain.GuideAssignmentView, error) {
	d := r.tx.data
	views := make([]domain.GuideAssignmentView, 0)
	for _, a := range d.assignments {
		if a.GuideID != guideID {
			continue
		}
		team, ok := d.teams[a.TeamID]
		if !ok {
			continue
		}
		project := d.projects[team.ProjectID]
		views = append(views, domain.GuideAssignmentView{
			GuideAssignment: a,
			ProjectID:       project.ID,
			ProjectTitle:    project.Title,
			ProjectStatus:   project.Status,
			TeamName:        team.Name,
			CreatedByName:   d.users[project.CreatedBy].Name,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID > views[j].ID })
	return views, nil
}

type userRepository struct{ tx *transaction }

func (r *userRepository) GetByID(_ context.Context, userID int64) (*domain.User, error) {
	u, ok := r.tx.data.users[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (r *userRepository) GetStudent(_ context.Context, userID int64) (*domain.Student, error) {
	s, ok := r.tx.data.students[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &s, nil
}

func (r *userRepository) GetStudents(_ context.Context, userIDs []int64) ([]domain.Student, error) {
	students := make([]domain.Student, 0, len(userIDs))
	for _, id := range userIDs {
		if s, ok := r.tx.data.students[id]; ok {
			students = append(students, s)
		}
	}
	return students, nil
}

func (r *userRepository) GetFaculty(_ context.Context, userID int64) (*domain.Faculty, error) {
	f, ok := r.tx.data.faculty[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &f, nil
}

func (r *userRepository) ListFacultyByDept(_ context.Context, deptID int64) ([]domain.Faculty, error) {
	faculty := make([]domain.Faculty, 0)
	for _, f := range r.tx.data.faculty {
		if f.DeptID == deptID {
			faculty = append(faculty, f)
		}
	}
	sort.Slice(faculty, func(i, j int) bool { return faculty[i].Name < faculty[j].Name })
	return faculty, nil
}

type reviewRepository struct{ tx *transaction }

func (r *reviewRepository) Create(_ context.Context, projectID int64, fileURL string) (*domain.ProjectReview, error) {
	d := r.tx.data
	if _, ok := d.projects[projectID]; !ok {
		return nil, storage.ErrNotFound
	}

	next := 1
	for _, rv := range d.reviews {
		if rv.ProjectID == projectID && rv.ReviewNumber >= next {
			next = rv.ReviewNumber + 1
		}
	}

	d.nextReviewID++
	review := domain.ProjectReview{
		ID:           d.nextReviewID,
		ProjectID:    projectID,
		ReviewNumber: next,
		FileURL:      fileURL,
		CreatedAt:    r.tx.now(),
	}
	d.reviews[review.ID] = review
	return &review, nil
}

func (r *reviewRepository) ListByProject(_ context.Context, projectID int64) ([]domain.ProjectReview, error) {
	reviews := make([]domain.ProjectReview, 0)
	for _, rv := range r.tx.data.reviews {
		if rv.ProjectID == projectID {
			reviews = append(reviews, rv)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ReviewNumber < reviews[j].ReviewNumber })
	return reviews, nil
}

func (t *transaction) isTeamMember(projectID, userID int64) bool {
	for _, team := range t.data.teams {
		if team.ProjectID != projectID {
			continue
		}
		for _, m := range team.Members {
			if m.UserID == userID {
				return true
			}
		}
	}
	return false
}

func sortProjects(projects []domain.Project) {
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].ID > projects[j].ID
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}
