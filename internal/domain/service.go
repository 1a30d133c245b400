package domain

import "context"

// AcademicService - интерфейс бизнес-логики формирования команд и одобрения проектов руководителем
//
//go:generate mockery --name=AcademicService --output=../mocks --outpkg=mocks --filename=academic_service_mock.go
type AcademicService interface {
	// CreateTeamRequest создаёт заявку на формирование команды от имени лидера
	CreateTeamRequest(ctx context.Context, input *CreateTeamRequestInput) (*TeamRequest, error)

	// ReplyToTeamRequest записывает ответ участника, последний accept материализует команду
	ReplyToTeamRequest(ctx context.Context, input *ReplyToTeamRequestInput) (*TeamRequestReplyResult, error)

	// CancelTeamRequest отзывает ожидающую заявку
	CancelTeamRequest(ctx context.Context, input *CancelTeamRequestInput) (*TeamRequest, error)

	// DecideGuideAssignment применяет решение руководителя к проекту
	DecideGuideAssignment(ctx context.Context, input *GuideDecisionInput) (*GuideDecisionResult, error)

	// GetTeamRequest возвращает заявку с участниками
	GetTeamRequest(ctx context.Context, requestID int64) (*TeamRequest, error)

	// ListTeamRequestsForUser возвращает заявки, где пользователь лидер или приглашённый
	ListTeamRequestsForUser(ctx context.Context, userID int64) ([]TeamRequest, error)

	// ListGuideAssignments возвращает назначения руководителя
	ListGuideAssignments(ctx context.Context, guideID int64) ([]GuideAssignmentView, error)

	// ListAvailableGuides возвращает преподавателей кафедры
	ListAvailableGuides(ctx context.Context, deptID int64) ([]Faculty, error)

	// CreateProject создаёт проект от имени студента
	CreateProject(ctx context.Context, input *CreateProjectInput) (*Project, error)

	// ListMyProjects возвращает проекты, созданные пользователем или где он в команде
	ListMyProjects(ctx context.Context, userID int64) ([]Project, error)

	// GetProjectDetails возвращает проект с командой, назначениями и ревью с учётом видимости
	GetProjectDetails(ctx context.Context, projectID, viewerID int64) (*ProjectDetails, error)

	// UpdateProjectFull частично обновляет проект
	UpdateProjectFull(ctx context.Context, input *UpdateProjectInput) (*Project, error)

	// AddProjectReview добавляет ревью со следующим порядковым номером
	AddProjectReview(ctx context.Context, input *AddProjectReviewInput) (*ProjectReview, error)

	// LikeProject увеличивает счётчик лайков
	LikeProject(ctx context.Context, projectID int64) (int, error)

	// GetStudentStats возвращает статистику студента
	GetStudentStats(ctx context.Context, userID int64) (*StudentStats, error)
}
