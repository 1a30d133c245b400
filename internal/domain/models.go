package domain

import "time"

// TeamRequest - заявка лидера на формирование команды проекта
type TeamRequest struct {
	ID         int64
	ProjectID  int64
	LeaderID   int64
	TeamName   string
	GuideID    *int64
	Status     TeamRequestStatus
	GuideStage GuideStage
	Members    []TeamRequestMember
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasGuide возвращает true если заявка несёт руководителя
func (r *TeamRequest) HasGuide() bool {
	return r.GuideID != nil
}

// TeamRequestMember - приглашённый участник заявки (лидер тоже присутствует с ролью leader)
type TeamRequestMember struct {
	RequestID   int64
	UserID      int64
	Role        MemberRole
	ReplyStatus MemberReplyStatus
	RepliedAt   *time.Time
}

// Team - сформированная команда проекта
type Team struct {
	ID        int64
	ProjectID int64
	Name      string
	GuideID   *int64
	Members   []TeamMember
	CreatedAt time.Time
}

// TeamMember - участник сформированной команды
type TeamMember struct {
	TeamID int64
	UserID int64
	Name   string
	Email  string
	Role   MemberRole
}

// GuideAssignment - назначение руководителя на команду
type GuideAssignment struct {
	ID         int64
	TeamID     int64
	GuideID    int64
	Status     GuideAssignmentStatus
	AssignedOn time.Time
}

// GuideAssignmentView - назначение руководителя с данными проекта для дашборда
type GuideAssignmentView struct {
	GuideAssignment
	ProjectID     int64
	ProjectTitle  string
	ProjectStatus ProjectStatus
	TeamName      string
	CreatedByName string
}

// Project - domain модель проекта
type Project struct {
	ID               int64
	Title            string
	Abstract         string
	Objective        *string
	Type             string
	Category         string
	CreatedBy        int64
	BatchID          int64
	DeptID           int64
	GuideID          *int64
	Status           ProjectStatus
	GuideStatus      GuideStatus
	Visibility       ProjectVisibility
	IsPublished      bool
	HostedLink       *string
	PaperLink        *string
	ConferenceName   *string
	ConferenceYear   *int
	ConferenceStatus *string
	Likes            int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProjectReview - загруженный файл ревью проекта
type ProjectReview struct {
	ID           int64
	ProjectID    int64
	ReviewNumber int
	FileURL      string
	CreatedAt    time.Time
}

// ProjectDetails - проект со всеми связанными данными
type ProjectDetails struct {
	Project          Project
	Team             *Team
	GuideAssignments []GuideAssignment
	Reviews          []ProjectReview
}

// User - пользователь системы
type User struct {
	ID    int64
	Name  string
	Email string
	Role  UserRole
}

// Student - студент с привязкой к потоку и кафедре
type Student struct {
	UserID       int64
	Name         string
	Email        string
	BatchID      int64
	DeptID       int64
	EnrollmentNo string
}

// Faculty - преподаватель (потенциальный руководитель)
type Faculty struct {
	UserID      int64
	Name        string
	Email       string
	DeptID      int64
	Designation string
}

// StudentStats - статистика студента для дашборда
type StudentStats struct {
	TotalProjects      int
	PublishedProjects  int
	InProgressProjects int
	TeamsParticipated  int
}

// Input/Output DTOs для методов сервиса

// CreateTeamRequestInput - входные данные для создания заявки
type CreateTeamRequestInput struct {
	ProjectID     int64
	LeaderID      int64
	TeamName      string
	MemberUserIDs []int64
	GuideID       *int64
}

// ReplyToTeamRequestInput - ответ участника на заявку
type ReplyToTeamRequestInput struct {
	RequestID int64
	UserID    int64
	Reply     MemberReplyStatus
}

// TeamRequestReplyResult - результат ответа участника
type TeamRequestReplyResult struct {
	Request         TeamRequest
	Team            *Team            // заполняется если команда материализована
	GuideAssignment *GuideAssignment // заполняется если у заявки есть руководитель
}

// CancelTeamRequestInput - отзыв заявки лидером
type CancelTeamRequestInput struct {
	RequestID int64
	LeaderID  int64
}

// GuideDecisionInput - решение руководителя по заявке
type GuideDecisionInput struct {
	RequestID int64
	GuideID   int64
	Decision  GuideDecision
}

// GuideDecisionResult - результат решения руководителя
type GuideDecisionResult struct {
	Request    TeamRequest
	Assignment GuideAssignment
	Project    Project
}

// CreateProjectInput - входные данные для создания проекта
type CreateProjectInput struct {
	CreatorID  int64
	Title      string
	Abstract   string
	Type       string
	Category   string
	Objective  *string
	HostedLink *string
	Visibility ProjectVisibility
	GuideID    *int64
}

// UpdateProjectInput - частичное обновление проекта, nil поля не меняются
type UpdateProjectInput struct {
	ProjectID        int64
	UserID           int64
	Title            *string
	Abstract         *string
	Objective        *string
	Category         *string
	Status           *ProjectStatus
	HostedLink       *string
	Visibility       *ProjectVisibility
	IsPublished      *bool
	PaperLink        *string
	ConferenceName   *string
	ConferenceYear   *int
	ConferenceStatus *string
}

// AddProjectReviewInput - загрузка ревью проекта
type AddProjectReviewInput struct {
	ProjectID int64
	UserID    int64
	FileURL   string
}
