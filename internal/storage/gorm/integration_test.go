package gorm_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlib "gorm.io/gorm"

	"academicHub/internal/config"
	"academicHub/internal/domain"
	"academicHub/internal/logger"
	"academicHub/internal/notify"
	"academicHub/internal/service"
	"academicHub/internal/storage"
	storageGorm "academicHub/internal/storage/gorm"
)

const (
	deptCSE   int64 = 1
	deptECE   int64 = 2
	batch2025 int64 = 1

	leaderID   int64 = 1
	member1ID  int64 = 2
	member2ID  int64 = 3
	member3ID  int64 = 4
	member4ID  int64 = 5
	outsiderID int64 = 6
	guideID    int64 = 10
	eceGuideID int64 = 11
)

var (
	testDB      *gormlib.DB
	testService *service.Service
)

// TestMain подключается к тестовой БД и применяет миграции, без БД тесты пропускаются
func TestMain(m *testing.M) {
	logger.Setup(&config.Config{
		ProductionType: "test",
	})

	migrations, err := filepath.Abs(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		panic(fmt.Sprintf("failed to resolve migrations path: %v", err))
	}

	cfg := &config.Config{
		ProductionType: "test",
		MigrationsPath: "file://" + migrations,
		Database: config.Database{
			Host:     getEnv("TEST_DB_HOST", "localhost"),
			Port:     getEnv("TEST_DB_PORT", "5436"),
			Name:     getEnv("TEST_DB_NAME", "academic_hub_test"),
			User:     getEnv("TEST_DB_USER", "academic"),
			Password: getEnv("TEST_DB_PASSWORD", "academic_password"),
			SSLMode:  "disable",
		},
	}

	db, err := storageGorm.ConnectDB(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("test database is unavailable, integration tests will be skipped")
	} else {
		testDB = db
		testService = service.New(storageGorm.NewTxManager(db), notify.NopPublisher{})
	}

	code := m.Run()

	if testDB != nil {
		if sqlDB, err := testDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	os.Exit(code)
}

// getEnv возвращает переменную окружения или дефолт
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTest очищает БД и заполняет справочники перед каждым тестом
func setupTest(t *testing.T) {
	t.Helper()

	if testDB == nil {
		t.Skip("test database is unavailable")
	}

	err := testDB.Exec(`TRUNCATE TABLE
		project_reviews, guide_assignments, team_members, teams,
		team_request_members, team_requests, projects,
		faculty, students, users, batches, departments
		RESTART IDENTITY CASCADE`).Error
	require.NoError(t, err, "failed to truncate tables")

	require.NoError(t, testDB.Exec(
		`INSERT INTO departments (dept_id, dept_name) VALUES (?, 'CSE'), (?, 'ECE')`, deptCSE, deptECE,
	).Error)
	require.NoError(t, testDB.Exec(
		`INSERT INTO batches (batch_id, batch_name) VALUES (?, '2025')`, batch2025,
	).Error)

	for i, id := range []int64{leaderID, member1ID, member2ID, member3ID, member4ID} {
		createStudent(t, id, fmt.Sprintf("Student %d", i+1), deptCSE)
	}
	createStudent(t, outsiderID, "Outsider", deptECE)
	createFaculty(t, guideID, "Dr. Rao", deptCSE)
	createFaculty(t, eceGuideID, "Dr. Iyer", deptECE)
}

func createStudent(t *testing.T, id int64, name string, dept int64) {
	t.Helper()

	require.NoError(t, testDB.Create(&storageGorm.User{
		UserID: id,
		Name:   name,
		Email:  fmt.Sprintf("user%d@college.edu", id),
		Role:   string(domain.UserRoleStudent),
	}).Error)
	require.NoError(t, testDB.Omit("User").Create(&storageGorm.Student{
		UserID:       id,
		BatchID:      batch2025,
		DeptID:       dept,
		EnrollmentNo: fmt.Sprintf("ENR%03d", id),
	}).Error)
}

func createFaculty(t *testing.T, id int64, name string, dept int64) {
	t.Helper()

	require.NoError(t, testDB.Create(&storageGorm.User{
		UserID: id,
		Name:   name,
		Email:  fmt.Sprintf("user%d@college.edu", id),
		Role:   string(domain.UserRoleFaculty),
	}).Error)
	require.NoError(t, testDB.Omit("User").Create(&storageGorm.Faculty{
		UserID:      id,
		DeptID:      dept,
		Designation: "Professor",
	}).Error)
}

// createTestProject создаёт проект от имени студента
func createTestProject(t *testing.T, creatorID int64, title string) *domain.Project {
	t.Helper()

	p, err := testService.CreateProject(context.Background(), &domain.CreateProjectInput{
		CreatorID: creatorID,
		Title:     title,
		Abstract:  "Abstract",
		Type:      "team",
		Category:  "IoT",
	})
	require.NoError(t, err, "failed to create test project")
	return p
}

// createTestRequest создаёт заявку от автора проекта
func createTestRequest(t *testing.T, project *domain.Project, guide *int64, members ...int64) *domain.TeamRequest {
	t.Helper()

	req, err := testService.CreateTeamRequest(context.Background(), &domain.CreateTeamRequestInput{
		ProjectID:     project.ID,
		LeaderID:      project.CreatedBy,
		TeamName:      "Team " + project.Title,
		MemberUserIDs: members,
		GuideID:       guide,
	})
	require.NoError(t, err, "failed to create test team request")
	return req
}

func replyTest(t *testing.T, requestID, userID int64) *domain.TeamRequestReplyResult {
	t.Helper()

	res, err := testService.ReplyToTeamRequest(context.Background(), &domain.ReplyToTeamRequestInput{
		RequestID: requestID,
		UserID:    userID,
		Reply:     domain.MemberReplyAccepted,
	})
	require.NoError(t, err)
	return res
}

func countRows(t *testing.T, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, testDB.Raw(query, args...).Scan(&n).Error)
	return n
}

// TestTeamFormation_WithGuide проверяет полный цикл: заявка, согласия, команда, решение руководителя
func TestTeamFormation_WithGuide(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	// Arrange
	project := createTestProject(t, leaderID, "Smart Campus")
	guide := guideID
	req := createTestRequest(t, project, &guide, member1ID, member2ID)

	// Act
	first := replyTest(t, req.ID, member2ID)
	second := replyTest(t, req.ID, member1ID)
	last := replyTest(t, req.ID, leaderID)

	// Assert
	assert.Nil(t, first.Team)
	assert.Nil(t, second.Team)
	require.NotNil(t, last.Team)
	require.NotNil(t, last.GuideAssignment)
	assert.Equal(t, domain.TeamRequestStatusAccepted, last.Request.Status)
	assert.Equal(t, domain.GuideStageAwaitingGuide, last.Request.GuideStage)
	assert.Len(t, last.Team.Members, 3)

	stored, err := testService.GetTeamRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, stored.Members, 3)
	assert.Equal(t, leaderID, stored.Members[0].UserID)
	assert.Equal(t, domain.MemberRoleLeader, stored.Members[0].Role)
	for _, m := range stored.Members {
		assert.Equal(t, domain.MemberReplyAccepted, m.ReplyStatus)
		assert.NotNil(t, m.RepliedAt)
	}

	details, err := testService.GetProjectDetails(ctx, project.ID, leaderID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPending, details.Project.Status)
	assert.Equal(t, domain.GuideStatusPending, details.Project.GuideStatus)
	require.NotNil(t, details.Team)
	assert.Len(t, details.Team.Members, 3)
	require.Len(t, details.GuideAssignments, 1)
	assert.Equal(t, domain.GuideAssignmentPending, details.GuideAssignments[0].Status)

	views, err := testService.ListGuideAssignments(ctx, guideID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, project.ID, views[0].ProjectID)
	assert.Equal(t, "Smart Campus", views[0].ProjectTitle)
	assert.Equal(t, "Student 1", views[0].CreatedByName)

	decision, err := testService.DecideGuideAssignment(ctx, &domain.GuideDecisionInput{
		RequestID: req.ID,
		GuideID:   guideID,
		Decision:  domain.GuideDecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusApproved, decision.Project.Status)
	assert.Equal(t, domain.GuideStatusApproved, decision.Project.GuideStatus)
	assert.Equal(t, domain.GuideStageApproved, decision.Request.GuideStage)
	assert.Equal(t, domain.GuideAssignmentApproved, decision.Assignment.Status)

	_, err = testService.DecideGuideAssignment(ctx, &domain.GuideDecisionInput{
		RequestID: req.ID,
		GuideID:   guideID,
		Decision:  domain.GuideDecisionReject,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// TestTeamFormation_WithoutGuide проверяет автоматическое одобрение без руководителя
func TestTeamFormation_WithoutGuide(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	// Arrange
	project := createTestProject(t, leaderID, "Library Bot")
	req := createTestRequest(t, project, nil, member1ID)

	// Act
	replyTest(t, req.ID, leaderID)
	res := replyTest(t, req.ID, member1ID)

	// Assert
	require.NotNil(t, res.Team)
	assert.Nil(t, res.GuideAssignment)
	assert.Equal(t, domain.GuideStageAutoApproved, res.Request.GuideStage)

	details, err := testService.GetProjectDetails(ctx, project.ID, member1ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusApproved, details.Project.Status)
	assert.Equal(t, domain.GuideStatusNA, details.Project.GuideStatus)
	assert.Empty(t, details.GuideAssignments)

	_, err = testService.CreateTeamRequest(ctx, &domain.CreateTeamRequestInput{
		ProjectID:     project.ID,
		LeaderID:      leaderID,
		TeamName:      "Second",
		MemberUserIDs: []int64{member2ID},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// TestCreateTeamRequest_ConcurrentPending проверяет что уникальный индекс оставляет одну ожидающую заявку
func TestCreateTeamRequest_ConcurrentPending(t *testing.T) {
	setupTest(t)

	// Arrange
	project := createTestProject(t, leaderID, "Race")
	members := []int64{member1ID, member2ID, member3ID, member4ID}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		errs      []error
	)

	// Act
	for _, member := range members {
		wg.Add(1)
		go func(member int64) {
			defer wg.Done()
			_, err := testService.CreateTeamRequest(context.Background(), &domain.CreateTeamRequestInput{
				ProjectID:     project.ID,
				LeaderID:      leaderID,
				TeamName:      fmt.Sprintf("Team %d", member),
				MemberUserIDs: []int64{member},
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			errs = append(errs, err)
		}(member)
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 1, succeeded)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	}
	assert.Equal(t, int64(1), countRows(t,
		`SELECT COUNT(*) FROM team_requests WHERE project_id = ? AND status = 'pending'`, project.ID))
}

// TestReplyToTeamRequest_ConcurrentAccepts проверяет что команда материализуется ровно один раз
func TestReplyToTeamRequest_ConcurrentAccepts(t *testing.T) {
	setupTest(t)

	// Arrange
	project := createTestProject(t, leaderID, "Parallel")
	req := createTestRequest(t, project, nil, member1ID, member2ID, member3ID)
	replyTest(t, req.ID, leaderID)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		materialized int
		errs         []error
	)

	// Act
	for _, member := range []int64{member1ID, member2ID, member3ID} {
		wg.Add(1)
		go func(member int64) {
			defer wg.Done()
			res, err := testService.ReplyToTeamRequest(context.Background(), &domain.ReplyToTeamRequestInput{
				RequestID: req.ID,
				UserID:    member,
				Reply:     domain.MemberReplyAccepted,
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if res.Team != nil {
				materialized++
			}
		}(member)
	}
	wg.Wait()

	// Assert
	assert.Empty(t, errs)
	assert.Equal(t, 1, materialized)
	assert.Equal(t, int64(1), countRows(t, `SELECT COUNT(*) FROM teams WHERE project_id = ?`, project.ID))
	assert.Equal(t, int64(4), countRows(t,
		`SELECT COUNT(*) FROM team_members tm JOIN teams t ON t.team_id = tm.team_id WHERE t.project_id = ?`, project.ID))
}

// TestListingsAndStats проверяет выборки по участию в команде и статистику студента
func TestListingsAndStats(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	// Arrange
	teamProject := createTestProject(t, leaderID, "Team Project")
	soloProject := createTestProject(t, member3ID, "Solo Project")
	req := createTestRequest(t, teamProject, nil, member1ID)
	replyTest(t, req.ID, leaderID)
	replyTest(t, req.ID, member1ID)

	published := true
	inProgress := domain.ProjectStatusInProgress
	_, err := testService.UpdateProjectFull(ctx, &domain.UpdateProjectInput{
		ProjectID:   teamProject.ID,
		UserID:      member1ID,
		IsPublished: &published,
		Status:      &inProgress,
	})
	require.NoError(t, err)

	// Act
	memberProjects, errMember := testService.ListMyProjects(ctx, member1ID)
	soloProjects, errSolo := testService.ListMyProjects(ctx, member3ID)
	memberRequests, errRequests := testService.ListTeamRequestsForUser(ctx, member1ID)
	memberStats, errMemberStats := testService.GetStudentStats(ctx, member1ID)
	soloStats, errSoloStats := testService.GetStudentStats(ctx, member3ID)

	// Assert
	require.NoError(t, errMember)
	require.NoError(t, errSolo)
	require.NoError(t, errRequests)
	require.NoError(t, errMemberStats)
	require.NoError(t, errSoloStats)

	require.Len(t, memberProjects, 1)
	assert.Equal(t, teamProject.ID, memberProjects[0].ID)
	require.Len(t, soloProjects, 1)
	assert.Equal(t, soloProject.ID, soloProjects[0].ID)

	require.Len(t, memberRequests, 1)
	assert.Equal(t, req.ID, memberRequests[0].ID)

	assert.Equal(t, domain.StudentStats{
		TotalProjects:      1,
		PublishedProjects:  1,
		InProgressProjects: 1,
		TeamsParticipated:  1,
	}, *memberStats)
	assert.Equal(t, domain.StudentStats{TotalProjects: 1}, *soloStats)
}

// TestAddProjectReview_Numbering проверяет сквозную нумерацию ревью в пределах проекта
func TestAddProjectReview_Numbering(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	// Arrange
	first := createTestProject(t, leaderID, "First")
	second := createTestProject(t, leaderID, "Second")

	// Act
	r1, err1 := testService.AddProjectReview(ctx, &domain.AddProjectReviewInput{ProjectID: first.ID, UserID: leaderID, FileURL: "https://files/r1.pdf"})
	r2, err2 := testService.AddProjectReview(ctx, &domain.AddProjectReviewInput{ProjectID: first.ID, UserID: leaderID, FileURL: "https://files/r2.pdf"})
	r3, err3 := testService.AddProjectReview(ctx, &domain.AddProjectReviewInput{ProjectID: second.ID, UserID: leaderID, FileURL: "https://files/r3.pdf"})

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.NoError(t, err3)
	assert.Equal(t, 1, r1.ReviewNumber)
	assert.Equal(t, 2, r2.ReviewNumber)
	assert.Equal(t, 1, r3.ReviewNumber)

	details, err := testService.GetProjectDetails(ctx, first.ID, leaderID)
	require.NoError(t, err)
	require.Len(t, details.Reviews, 2)
	assert.Equal(t, 1, details.Reviews[0].ReviewNumber)
	assert.Equal(t, 2, details.Reviews[1].ReviewNumber)
}

// TestLikeProject проверяет атомарный счётчик лайков
func TestLikeProject(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	// Arrange
	project := createTestProject(t, leaderID, "Liked")

	// Act
	firstLikes, err1 := testService.LikeProject(ctx, project.ID)
	secondLikes, err2 := testService.LikeProject(ctx, project.ID)
	_, errMissing := testService.LikeProject(ctx, 9999)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, 1, firstLikes)
	assert.Equal(t, 2, secondLikes)
	assert.ErrorIs(t, errMissing, domain.ErrResourceNotFound)
}

// TestListAvailableGuides проверяет выборку преподавателей кафедры по имени
func TestListAvailableGuides(t *testing.T) {
	setupTest(t)

	// Arrange
	createFaculty(t, 12, "Dr. Anand", deptCSE)

	// Act
	guides, err := testService.ListAvailableGuides(context.Background(), deptCSE)

	// Assert
	require.NoError(t, err)
	require.Len(t, guides, 2)
	assert.Equal(t, "Dr. Anand", guides[0].Name)
	assert.Equal(t, "Dr. Rao", guides[1].Name)
}

// TestTeamRequestRepository_Errors проверяет перевод ошибок PostgreSQL в ошибки storage
func TestTeamRequestRepository_Errors(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	repo := storageGorm.NewTeamRequestRepository(testDB)

	// Act
	errFK := repo.Create(ctx, &domain.TeamRequest{
		ProjectID:  9999,
		LeaderID:   leaderID,
		TeamName:   "Ghost",
		Status:     domain.TeamRequestStatusPending,
		GuideStage: domain.GuideStageNone,
	})
	_, errMissing := repo.GetByID(ctx, 9999)
	errReply := repo.UpdateMemberReply(ctx, 9999, leaderID, domain.MemberReplyAccepted, time.Now().UTC())

	// Assert
	assert.ErrorIs(t, errFK, storage.ErrConflict)
	assert.ErrorIs(t, errMissing, storage.ErrNotFound)
	assert.ErrorIs(t, errReply, storage.ErrNotFound)
}
