// Package memory реализует storage.TxManager поверх данных в памяти.
// Используется в тестах сервиса.
package memory

import (
	"context"
	"sync"
	"time"

	"academicHub/internal/domain"
	"academicHub/internal/storage"
)

type state struct {
	users       map[int64]domain.User
	students    map[int64]domain.Student
	faculty     map[int64]domain.Faculty
	projects    map[int64]domain.Project
	requests    map[int64]domain.TeamRequest
	teams       map[int64]domain.Team
	assignments map[int64]domain.GuideAssignment
	reviews     map[int64]domain.ProjectReview

	nextProjectID    int64
	nextRequestID    int64
	nextTeamID       int64
	nextAssignmentID int64
	nextReviewID     int64
}

func newState() *state {
	return &state{
		users:       make(map[int64]domain.User),
		students:    make(map[int64]domain.Student),
		faculty:     make(map[int64]domain.Faculty),
		projects:    make(map[int64]domain.Project),
		requests:    make(map[int64]domain.TeamRequest),
		teams:       make(map[int64]domain.Team),
		assignments: make(map[int64]domain.GuideAssignment),
		reviews:     make(map[int64]domain.ProjectReview),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.students {
		c.students[k] = v
	}
	for k, v := range s.faculty {
		c.faculty[k] = v
	}
	for k, v := range s.projects {
		c.projects[k] = v
	}
	for k, v := range s.requests {
		v.Members = append([]domain.TeamRequestMember(nil), v.Members...)
		c.requests[k] = v
	}
	for k, v := range s.teams {
		v.Members = append([]domain.TeamMember(nil), v.Members...)
		c.teams[k] = v
	}
	for k, v := range s.assignments {
		c.assignments[k] = v
	}
	for k, v := range s.reviews {
		c.reviews[k] = v
	}
	c.nextProjectID = s.nextProjectID
	c.nextRequestID = s.nextRequestID
	c.nextTeamID = s.nextTeamID
	c.nextAssignmentID = s.nextAssignmentID
	c.nextReviewID = s.nextReviewID
	return c
}

// Store - хранилище в памяти. Единицы работы выполняются последовательно,
// изменения применяются только при успешном завершении fn.
type Store struct {
	mu    sync.Mutex
	data  *state
	clock func() time.Time
}

var _ storage.TxManager = (*Store)(nil)

// NewStore создаёт пустое хранилище
func NewStore() *Store {
	return &Store{
		data:  newState(),
		clock: func() time.Time { return time.Now().UTC() },
	}
}

// Do выполняет fn над копией данных и публикует копию только при успехе
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.clone()
	if err := fn(ctx, &transaction{data: working, now: s.clock}); err != nil {
		return err
	}

	s.data = working
	return nil
}

// AddUser добавляет пользователя
func (s *Store) AddUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[user.ID] = user
}

// AddStudent добавляет пользователя-студента
func (s *Store) AddStudent(student domain.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[student.UserID] = domain.User{
		ID:    student.UserID,
		Name:  student.Name,
		Email: student.Email,
		Role:  domain.UserRoleStudent,
	}
	s.data.students[student.UserID] = student
}

// AddFaculty добавляет пользователя-преподавателя
func (s *Store) AddFaculty(faculty domain.Faculty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[faculty.UserID] = domain.User{
		ID:    faculty.UserID,
		Name:  faculty.Name,
		Email: faculty.Email,
		Role:  domain.UserRoleFaculty,
	}
	s.data.faculty[faculty.UserID] = faculty
}

// Teams возвращает все команды проекта (для проверки уникальности в тестах)
func (s *Store) Teams(projectID int64) []domain.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	var teams []domain.Team
	for _, t := range s.data.teams {
		if t.ProjectID == projectID {
			t.Members = append([]domain.TeamMember(nil), t.Members...)
			teams = append(teams, t)
		}
	}
	return teams
}

// GuideAssignments возвращает все назначения руководителей
func (s *Store) GuideAssignments() []domain.GuideAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments := make([]domain.GuideAssignment, 0, len(s.data.assignments))
	for _, a := range s.data.assignments {
		assignments = append(assignments, a)
	}
	return assignments
}

// Project возвращает текущее состояние проекта
func (s *Store) Project(projectID int64) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.projects[projectID]
	return p, ok
}

// transaction реализует storage.Tx над рабочей копией
type transaction struct {
	data *state
	now  func() time.Time
}

func (t *transaction) ProjectRepo() storage.ProjectRepository {
	return &projectRepository{t}
}

func (t *transaction) TeamRequestRepo() storage.TeamRequestRepository {
	return &teamRequestRepository{t}
}

func (t *transaction) TeamRepo() storage.TeamRepository {
	return &teamRepository{t}
}

func (t *transaction) GuideAssignmentRepo() storage.GuideAssignmentRepository {
	return &guideAssignmentRepository{t}
}

func (t *transaction) UserRepo() storage.UserRepository {
	return &userRepository{t}
}

func (t *transaction) ReviewRepo() storage.ReviewRepository {
	return &reviewRepository{t}
}
