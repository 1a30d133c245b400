package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"academicHub/internal/api/handlers"
	"academicHub/internal/auth"
	"academicHub/internal/domain"
	"academicHub/internal/mocks"
)

type testEnv struct {
	router  *gin.Engine
	service *mocks.AcademicService
	tokens  *auth.Manager
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewManager("handler-test-secret", time.Hour)
	require.NoError(t, err)

	mockService := mocks.NewAcademicService(t)
	handler := handlers.NewHandler(mockService, tokens)

	return &testEnv{
		router:  handler.InitRoutes(),
		service: mockService,
		tokens:  tokens,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, userID int64, role domain.UserRole) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		token, err := e.tokens.GenerateToken(userID, role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	errorObj := decode(t, w)["error"].(map[string]interface{})
	return errorObj["code"].(string)
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateTeamRequestHandler_Success(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	requestBody := map[string]interface{}{
		"project_id":      7,
		"team_name":       "Team X",
		"member_user_ids": []int64{2, 3},
		"guide_id":        10,
	}

	expected := &domain.TeamRequest{
		ID:         1,
		ProjectID:  7,
		LeaderID:   1,
		TeamName:   "Team X",
		GuideID:    int64Ptr(10),
		Status:     domain.TeamRequestStatusPending,
		GuideStage: domain.GuideStageNone,
		Members: []domain.TeamRequestMember{
			{RequestID: 1, UserID: 1, Role: domain.MemberRoleLeader, ReplyStatus: domain.MemberReplyPending},
			{RequestID: 1, UserID: 2, Role: domain.MemberRoleMember, ReplyStatus: domain.MemberReplyPending},
			{RequestID: 1, UserID: 3, Role: domain.MemberRoleMember, ReplyStatus: domain.MemberReplyPending},
		},
	}

	env.service.On("CreateTeamRequest", mock.Anything, mock.MatchedBy(func(input *domain.CreateTeamRequestInput) bool {
		return input.ProjectID == 7 &&
			input.LeaderID == 1 &&
			input.TeamName == "Team X" &&
			len(input.MemberUserIDs) == 2 &&
			input.GuideID != nil && *input.GuideID == 10
	})).Return(expected, nil)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/create", requestBody, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	request := decode(t, w)["team_request"].(map[string]interface{})
	assert.Equal(t, float64(1), request["request_id"])
	assert.Equal(t, "pending", request["status"])
	assert.Equal(t, "none", request["guide_stage"])
	assert.Len(t, request["members"], 3)
}

func TestCreateTeamRequestHandler_InvalidRequest(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	// Нет team_name
	requestBody := map[string]interface{}{
		"project_id":      7,
		"member_user_ids": []int64{2},
	}

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/create", requestBody, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
}

func TestCreateTeamRequestHandler_FacultyForbidden(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	requestBody := map[string]interface{}{
		"project_id":      7,
		"team_name":       "Team X",
		"member_user_ids": []int64{2},
	}

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/create", requestBody, 10, domain.UserRoleFaculty)

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))
}

func TestCreateTeamRequestHandler_Unauthorized(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/create", map[string]interface{}{}, 0, "")

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, w))
}

func TestCreateTeamRequestHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation", err: domain.Validation("team size must be between 2 and 4"), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "not found", err: domain.NotFound("project not found"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "invalid state", err: domain.InvalidState("project already has a pending team request"), wantStatus: http.StatusConflict, wantCode: "INVALID_STATE"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			env := setupTestRouter(t)
			env.service.On("CreateTeamRequest", mock.Anything, mock.Anything).Return(nil, tt.err)

			requestBody := map[string]interface{}{
				"project_id":      7,
				"team_name":       "Team X",
				"member_user_ids": []int64{2},
			}

			// Act
			w := env.do(t, http.MethodPost, "/teamRequest/create", requestBody, 1, domain.UserRoleStudent)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}
}

func TestReplyToTeamRequestHandler_MaterializesTeam(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	result := &domain.TeamRequestReplyResult{
		Request: domain.TeamRequest{
			ID:         1,
			Status:     domain.TeamRequestStatusAccepted,
			GuideStage: domain.GuideStageAwaitingGuide,
		},
		Team: &domain.Team{
			ID:        3,
			ProjectID: 7,
			Name:      "Team X",
			Members: []domain.TeamMember{
				{TeamID: 3, UserID: 1, Name: "Leader", Role: domain.MemberRoleLeader},
				{TeamID: 3, UserID: 2, Name: "Member", Role: domain.MemberRoleMember},
			},
		},
		GuideAssignment: &domain.GuideAssignment{ID: 5, TeamID: 3, GuideID: 10, Status: domain.GuideAssignmentPending},
	}

	env.service.On("ReplyToTeamRequest", mock.Anything, &domain.ReplyToTeamRequestInput{
		RequestID: 1,
		UserID:    2,
		Reply:     domain.MemberReplyAccepted,
	}).Return(result, nil)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/reply",
		map[string]interface{}{"request_id": 1, "reply": "accepted"}, 2, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	response := decode(t, w)
	request := response["team_request"].(map[string]interface{})
	assert.Equal(t, "accepted", request["status"])
	assert.Equal(t, "awaiting_guide", request["guide_stage"])

	team := response["team"].(map[string]interface{})
	assert.Equal(t, float64(3), team["team_id"])
	assert.Len(t, team["members"], 2)

	assignment := response["guide_assignment"].(map[string]interface{})
	assert.Equal(t, "pending", assignment["status"])
}

func TestReplyToTeamRequestHandler_StillPending(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	env.service.On("ReplyToTeamRequest", mock.Anything, mock.Anything).Return(&domain.TeamRequestReplyResult{
		Request: domain.TeamRequest{ID: 1, Status: domain.TeamRequestStatusPending, GuideStage: domain.GuideStageNone},
	}, nil)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/reply",
		map[string]interface{}{"request_id": 1, "reply": "accepted"}, 2, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	response := decode(t, w)
	assert.NotContains(t, response, "team")
	assert.NotContains(t, response, "guide_assignment")
}

func TestReplyToTeamRequestHandler_TeamExists(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("ReplyToTeamRequest", mock.Anything, mock.Anything).Return(nil, domain.ErrTeamExists)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/reply",
		map[string]interface{}{"request_id": 1, "reply": "accepted"}, 2, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TEAM_EXISTS", errorCode(t, w))
}

func TestCancelTeamRequestHandler_Success(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("CancelTeamRequest", mock.Anything, &domain.CancelTeamRequestInput{RequestID: 4, LeaderID: 1}).
		Return(&domain.TeamRequest{ID: 4, Status: domain.TeamRequestStatusCancelled}, nil)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/cancel", map[string]interface{}{"request_id": 4}, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	request := decode(t, w)["team_request"].(map[string]interface{})
	assert.Equal(t, "cancelled", request["status"])
}

func TestDecideGuideAssignmentHandler_Approve(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	result := &domain.GuideDecisionResult{
		Request:    domain.TeamRequest{ID: 1, Status: domain.TeamRequestStatusAccepted, GuideStage: domain.GuideStageApproved},
		Assignment: domain.GuideAssignment{ID: 5, TeamID: 3, GuideID: 10, Status: domain.GuideAssignmentApproved},
		Project:    domain.Project{ID: 7, Status: domain.ProjectStatusApproved, GuideStatus: domain.GuideStatusApproved, GuideID: int64Ptr(10)},
	}

	env.service.On("DecideGuideAssignment", mock.Anything, &domain.GuideDecisionInput{
		RequestID: 1,
		GuideID:   10,
		Decision:  domain.GuideDecisionApprove,
	}).Return(result, nil)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/guideDecision",
		map[string]interface{}{"request_id": 1, "decision": "approve"}, 10, domain.UserRoleFaculty)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	response := decode(t, w)
	project := response["project"].(map[string]interface{})
	assert.Equal(t, "approved", project["status"])
	assert.Equal(t, "approved", project["guide_status"])
	assert.Equal(t, "approved", response["team_request"].(map[string]interface{})["guide_stage"])
}

func TestDecideGuideAssignmentHandler_StudentForbidden(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	// Act
	w := env.do(t, http.MethodPost, "/teamRequest/guideDecision",
		map[string]interface{}{"request_id": 1, "decision": "approve"}, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetTeamRequestHandler(t *testing.T) {
	t.Run("missing parameter", func(t *testing.T) {
		// Arrange
		env := setupTestRouter(t)

		// Act
		w := env.do(t, http.MethodGet, "/teamRequest/get", nil, 1, domain.UserRoleStudent)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
	})

	t.Run("not a number", func(t *testing.T) {
		// Arrange
		env := setupTestRouter(t)

		// Act
		w := env.do(t, http.MethodGet, "/teamRequest/get?request_id=abc", nil, 1, domain.UserRoleStudent)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		// Arrange
		env := setupTestRouter(t)
		env.service.On("GetTeamRequest", mock.Anything, int64(99)).Return(nil, domain.ErrResourceNotFound)

		// Act
		w := env.do(t, http.MethodGet, "/teamRequest/get?request_id=99", nil, 1, domain.UserRoleStudent)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, w))
	})
}

func TestListMyTeamRequestsHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("ListTeamRequestsForUser", mock.Anything, int64(2)).Return([]domain.TeamRequest{
		{ID: 2, Status: domain.TeamRequestStatusPending},
		{ID: 1, Status: domain.TeamRequestStatusRejected},
	}, nil)

	// Act
	w := env.do(t, http.MethodGet, "/teamRequest/my", nil, 2, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	response := decode(t, w)
	assert.Equal(t, float64(2), response["user_id"])
	assert.Len(t, response["team_requests"], 2)
}

func TestListGuideAssignmentsHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("ListGuideAssignments", mock.Anything, int64(10)).Return([]domain.GuideAssignmentView{
		{
			GuideAssignment: domain.GuideAssignment{ID: 5, TeamID: 3, GuideID: 10, Status: domain.GuideAssignmentPending},
			ProjectID:       7,
			ProjectTitle:    "Smart Campus",
			ProjectStatus:   domain.ProjectStatusPending,
			TeamName:        "Team X",
			CreatedByName:   "Leader",
		},
	}, nil)

	// Act
	w := env.do(t, http.MethodGet, "/guide/assignments", nil, 10, domain.UserRoleFaculty)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["assignments"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Smart Campus", item["project_title"])
	assert.Equal(t, "pending", item["status"])
}

func TestListAvailableGuidesHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("ListAvailableGuides", mock.Anything, int64(1)).Return([]domain.Faculty{
		{UserID: 10, Name: "Dr. Rao", DeptID: 1, Designation: "Professor"},
	}, nil)

	// Act
	w := env.do(t, http.MethodGet, "/guide/available?dept_id=1", nil, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	guides := decode(t, w)["guides"].([]interface{})
	require.Len(t, guides, 1)
	assert.Equal(t, "Dr. Rao", guides[0].(map[string]interface{})["name"])
}

func TestCreateProjectHandler_Success(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	env.service.On("CreateProject", mock.Anything, mock.MatchedBy(func(input *domain.CreateProjectInput) bool {
		return input.CreatorID == 1 &&
			input.Title == "Smart Campus" &&
			input.Visibility == domain.ProjectVisibilityPrivate &&
			input.GuideID == nil
	})).Return(&domain.Project{
		ID:          7,
		Title:       "Smart Campus",
		CreatedBy:   1,
		Status:      domain.ProjectStatusNew,
		GuideStatus: domain.GuideStatusNA,
		Visibility:  domain.ProjectVisibilityPrivate,
	}, nil)

	requestBody := map[string]interface{}{
		"title":      "Smart Campus",
		"abstract":   "IoT sensors across campus",
		"type":       "major",
		"category":   "IoT",
		"visibility": "private",
	}

	// Act
	w := env.do(t, http.MethodPost, "/projects/create", requestBody, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	project := decode(t, w)["project"].(map[string]interface{})
	assert.Equal(t, "new", project["status"])
	assert.Equal(t, "NA", project["guide_status"])
	assert.Equal(t, "private", project["visibility"])
}

func TestUpdateProjectHandler_PassesOnlyProvidedFields(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	env.service.On("UpdateProjectFull", mock.Anything, mock.MatchedBy(func(input *domain.UpdateProjectInput) bool {
		return input.ProjectID == 7 &&
			input.UserID == 2 &&
			input.Status != nil && *input.Status == domain.ProjectStatusInProgress &&
			input.Title == nil &&
			input.Visibility == nil
	})).Return(&domain.Project{ID: 7, Status: domain.ProjectStatusInProgress}, nil)

	// Act
	w := env.do(t, http.MethodPost, "/projects/update",
		map[string]interface{}{"project_id": 7, "status": "in-progress"}, 2, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "in-progress", decode(t, w)["project"].(map[string]interface{})["status"])
}

func TestUpdateProjectHandler_CompletedProject(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("UpdateProjectFull", mock.Anything, mock.Anything).
		Return(nil, domain.InvalidState("completed project cannot be edited"))

	// Act
	w := env.do(t, http.MethodPost, "/projects/update",
		map[string]interface{}{"project_id": 7, "title": "New"}, 2, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_STATE", errorCode(t, w))
}

func TestGetProjectDetailsHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("GetProjectDetails", mock.Anything, int64(7), int64(2)).Return(&domain.ProjectDetails{
		Project:          domain.Project{ID: 7, Title: "Smart Campus", Status: domain.ProjectStatusApproved},
		Team:             &domain.Team{ID: 3, ProjectID: 7, Name: "Team X"},
		GuideAssignments: []domain.GuideAssignment{},
		Reviews:          []domain.ProjectReview{{ID: 1, ProjectID: 7, ReviewNumber: 1, FileURL: "https://files/r1.pdf"}},
	}, nil)

	// Act
	w := env.do(t, http.MethodGet, "/projects/get?project_id=7", nil, 2, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	project := decode(t, w)["project"].(map[string]interface{})
	assert.Equal(t, "NA", project["guide_status"])
	assert.NotNil(t, project["team"])
	assert.Len(t, project["guide_assignments"], 0)
	assert.Len(t, project["reviews"], 1)
}

func TestGetProjectDetailsHandler_PrivateProject(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("GetProjectDetails", mock.Anything, int64(7), int64(6)).
		Return(nil, domain.Forbidden("project is private"))

	// Act
	w := env.do(t, http.MethodGet, "/projects/get?project_id=7", nil, 6, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))
}

func TestAddProjectReviewHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("AddProjectReview", mock.Anything, &domain.AddProjectReviewInput{
		ProjectID: 7,
		UserID:    1,
		FileURL:   "https://files/r2.pdf",
	}).Return(&domain.ProjectReview{ID: 2, ProjectID: 7, ReviewNumber: 2, FileURL: "https://files/r2.pdf"}, nil)

	// Act
	w := env.do(t, http.MethodPost, "/projects/review",
		map[string]interface{}{"project_id": 7, "file_url": "https://files/r2.pdf"}, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["review"].(map[string]interface{})["review_number"])
}

func TestLikeProjectHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("LikeProject", mock.Anything, int64(7)).Return(4, nil)

	// Act
	w := env.do(t, http.MethodPost, "/projects/like", map[string]interface{}{"project_id": 7}, 6, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), decode(t, w)["likes"])
}

func TestListMyProjectsHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("ListMyProjects", mock.Anything, int64(1)).Return([]domain.Project{{ID: 7}, {ID: 8}}, nil)

	// Act
	w := env.do(t, http.MethodGet, "/projects/my", nil, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["projects"], 2)
}

func TestGetStudentStatsHandler(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)
	env.service.On("GetStudentStats", mock.Anything, int64(1)).Return(&domain.StudentStats{
		TotalProjects:      3,
		PublishedProjects:  1,
		InProgressProjects: 1,
		TeamsParticipated:  2,
	}, nil)

	// Act
	w := env.do(t, http.MethodGet, "/users/stats", nil, 1, domain.UserRoleStudent)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	response := decode(t, w)
	assert.Equal(t, float64(3), response["total_projects"])
	assert.Equal(t, float64(2), response["teams_participated"])
}

func TestMetricsEndpoint(t *testing.T) {
	// Arrange
	env := setupTestRouter(t)

	// Act
	w := env.do(t, http.MethodGet, "/metrics", nil, 0, "")

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
