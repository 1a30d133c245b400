package domain

// TeamRequestStatus - статус заявки на формирование команды
type TeamRequestStatus string

const (
	TeamRequestStatusPending   TeamRequestStatus = "pending"
	TeamRequestStatusAccepted  TeamRequestStatus = "accepted"
	TeamRequestStatusRejected  TeamRequestStatus = "rejected"
	TeamRequestStatusCancelled TeamRequestStatus = "cancelled"
)

// teamRequestTransitions - допустимые переходы заявки, все остальные статусы терминальные
var teamRequestTransitions = map[TeamRequestStatus][]TeamRequestStatus{
	TeamRequestStatusPending: {
		TeamRequestStatusAccepted,
		TeamRequestStatusRejected,
		TeamRequestStatusCancelled,
	},
}

// CanTransitionTo проверяет допустимость перехода заявки в статус next
func (s TeamRequestStatus) CanTransitionTo(next TeamRequestStatus) bool {
	for _, allowed := range teamRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal возвращает true если заявка больше не принимает ответы
func (s TeamRequestStatus) IsTerminal() bool {
	return len(teamRequestTransitions[s]) == 0
}

// GuideStage - подсостояние принятой заявки, связанное с руководителем
type GuideStage string

const (
	GuideStageNone          GuideStage = "none"
	GuideStageAutoApproved  GuideStage = "auto_approved"
	GuideStageAwaitingGuide GuideStage = "awaiting_guide"
	GuideStageApproved      GuideStage = "approved"
	GuideStageRejected      GuideStage = "guide_rejected"
)

var guideStageTransitions = map[GuideStage][]GuideStage{
	GuideStageNone:          {GuideStageAutoApproved, GuideStageAwaitingGuide},
	GuideStageAwaitingGuide: {GuideStageApproved, GuideStageRejected},
}

// CanTransitionTo проверяет допустимость перехода подсостояния руководителя
func (s GuideStage) CanTransitionTo(next GuideStage) bool {
	for _, allowed := range guideStageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MemberReplyStatus - ответ участника на приглашение в команду
type MemberReplyStatus string

const (
	MemberReplyPending  MemberReplyStatus = "pending"
	MemberReplyAccepted MemberReplyStatus = "accepted"
	MemberReplyDeclined MemberReplyStatus = "declined"
)

// IsValidReply - только accepted и declined могут быть отправлены участником
func (s MemberReplyStatus) IsValidReply() bool {
	return s == MemberReplyAccepted || s == MemberReplyDeclined
}

// MemberRole - роль участника в заявке и в команде
type MemberRole string

const (
	MemberRoleLeader MemberRole = "leader"
	MemberRoleMember MemberRole = "member"
)

// GuideAssignmentStatus - статус назначения руководителя
type GuideAssignmentStatus string

const (
	GuideAssignmentPending  GuideAssignmentStatus = "pending"
	GuideAssignmentApproved GuideAssignmentStatus = "approved"
	GuideAssignmentRejected GuideAssignmentStatus = "rejected"
)

var guideAssignmentTransitions = map[GuideAssignmentStatus][]GuideAssignmentStatus{
	GuideAssignmentPending: {GuideAssignmentApproved, GuideAssignmentRejected},
}

// CanTransitionTo проверяет допустимость перехода назначения руководителя
func (s GuideAssignmentStatus) CanTransitionTo(next GuideAssignmentStatus) bool {
	for _, allowed := range guideAssignmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// GuideDecision - решение руководителя по проекту
type GuideDecision string

const (
	GuideDecisionApprove GuideDecision = "approve"
	GuideDecisionReject  GuideDecision = "reject"
)

// IsValid проверяет что решение одно из approve/reject
func (d GuideDecision) IsValid() bool {
	return d == GuideDecisionApprove || d == GuideDecisionReject
}

// ProjectStatus - статус проекта
type ProjectStatus string

const (
	ProjectStatusNew        ProjectStatus = "new"
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusRejected   ProjectStatus = "rejected"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// IsValid проверяет что статус входит в закрытое множество статусов проекта
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusNew, ProjectStatusPending, ProjectStatusApproved,
		ProjectStatusInProgress, ProjectStatusRejected, ProjectStatusCompleted:
		return true
	}
	return false
}

// IsPastGuideGate - статусы, которых нельзя достичь без одобрения руководителя
func (s ProjectStatus) IsPastGuideGate() bool {
	return s == ProjectStatusApproved || s == ProjectStatusInProgress || s == ProjectStatusCompleted
}

// GuideStatus - отражение решения руководителя на уровне проекта
type GuideStatus string

const (
	GuideStatusNA       GuideStatus = "NA"
	GuideStatusPending  GuideStatus = "pending"
	GuideStatusApproved GuideStatus = "approved"
	GuideStatusRejected GuideStatus = "rejected"
)

// UserRole - роль пользователя в системе
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleFaculty UserRole = "faculty"
	UserRoleAdmin   UserRole = "admin"
)

// IsValid проверяет значение роли
func (r UserRole) IsValid() bool {
	return r == UserRoleStudent || r == UserRoleFaculty || r == UserRoleAdmin
}

// ProjectVisibility - видимость проекта
type ProjectVisibility string

const (
	ProjectVisibilityPublic  ProjectVisibility = "public"
	ProjectVisibilityPrivate ProjectVisibility = "private"
)

// IsValid проверяет значение видимости
func (v ProjectVisibility) IsValid() bool {
	return v == ProjectVisibilityPublic || v == ProjectVisibilityPrivate
}
