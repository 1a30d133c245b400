package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"academicHub/internal/api/middleware"
	"academicHub/internal/domain"
)

const (
	TeamRequestPathRoute    = "/teamRequest"
	CreateTeamRequestRoute  = "/create"
	ReplyTeamRequestRoute   = "/reply"
	CancelTeamRequestRoute  = "/cancel"
	GuideDecisionRoute      = "/guideDecision"
	GetTeamRequestRoute     = "/get"
	ListMyTeamRequestsRoute = "/my"

	GuidePathRoute        = "/guide"
	GuideAssignmentsRoute = "/assignments"
	AvailableGuidesRoute  = "/available"

	ProjectPathRoute      = "/projects"
	CreateProjectRoute    = "/create"
	ListMyProjectsRoute   = "/my"
	GetProjectRoute       = "/get"
	UpdateProjectRoute    = "/update"
	AddProjectReviewRoute = "/review"
	LikeProjectRoute      = "/like"

	UserPathRoute     = "/users"
	StudentStatsRoute = "/stats"

	MetricsRoute = "/metrics"
)

type Handler struct {
	service domain.AcademicService
	tokens  middleware.TokenValidator
}

func NewHandler(service domain.AcademicService, tokens middleware.TokenValidator) *Handler {
	return &Handler{service: service, tokens: tokens}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.CORSMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.AuthMiddleware(h.tokens),
	)

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	student := middleware.RequireRole(domain.UserRoleStudent)
	faculty := middleware.RequireRole(domain.UserRoleFaculty)
	authorized := middleware.RequireAuth()

	teamRequestGroup := r.Group(TeamRequestPathRoute)
	{
		teamRequestGroup.POST(CreateTeamRequestRoute, student, h.CreateTeamRequest)
		teamRequestGroup.POST(ReplyTeamRequestRoute, student, h.ReplyToTeamRequest)
		teamRequestGroup.POST(CancelTeamRequestRoute, student, h.CancelTeamRequest)
		teamRequestGroup.POST(GuideDecisionRoute, faculty, h.DecideGuideAssignment)
		teamRequestGroup.GET(GetTeamRequestRoute, authorized, h.GetTeamRequest)
		teamRequestGroup.GET(ListMyTeamRequestsRoute, authorized, h.ListMyTeamRequests)
	}

	guideGroup := r.Group(GuidePathRoute)
	{
		guideGroup.GET(GuideAssignmentsRoute, faculty, h.ListGuideAssignments)
		guideGroup.GET(AvailableGuidesRoute, authorized, h.ListAvailableGuides)
	}

	projectGroup := r.Group(ProjectPathRoute)
	{
		projectGroup.POST(CreateProjectRoute, student, h.CreateProject)
		projectGroup.GET(ListMyProjectsRoute, authorized, h.ListMyProjects)
		projectGroup.GET(GetProjectRoute, authorized, h.GetProjectDetails)
		projectGroup.POST(UpdateProjectRoute, authorized, h.UpdateProject)
		projectGroup.POST(AddProjectReviewRoute, authorized, h.AddProjectReview)
		projectGroup.POST(LikeProjectRoute, authorized, h.LikeProject)
	}

	userGroup := r.Group(UserPathRoute)
	{
		userGroup.GET(StudentStatsRoute, authorized, h.GetStudentStats)
	}

	return r
}
