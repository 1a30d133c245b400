package storage

import (
	"context"
	"time"

	"academicHub/internal/domain"
)

// TxManager управляет транзакциями базы данных.
//
// Контракт изоляции: каждая операция workflow выполняется в одной транзакции
// уровня не ниже READ COMMITTED, строка заявки блокируется через
// TeamRequestRepository.GetByIDForUpdate до чтения статусов участников.
//
//go:generate mockery --name=TxManager --output=../mocks --outpkg=mocks --filename=tx_manager_mock.go
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx представляет транзакцию с доступом к репозиториям
//
//go:generate mockery --name=Tx --output=../mocks --outpkg=mocks --filename=tx_mock.go
type Tx interface {
	ProjectRepo() ProjectRepository
	TeamRequestRepo() TeamRequestRepository
	TeamRepo() TeamRepository
	GuideAssignmentRepo() GuideAssignmentRepository
	UserRepo() UserRepository
	ReviewRepo() ReviewRepository
}

// ProjectRepository определяет операции с проектами
//
//go:generate mockery --name=ProjectRepository --output=../mocks --outpkg=mocks --filename=project_repository_mock.go
type ProjectRepository interface {
	// Create создаёт проект и заполняет ID и временные метки
	Create(ctx context.Context, project *domain.Project) error

	// GetByID возвращает проект по ID
	GetByID(ctx context.Context, projectID int64) (*domain.Project, error)

	// Update сохраняет изменяемые поля проекта
	Update(ctx context.Context, project *domain.Project) error

	// ListByUser возвращает проекты, созданные пользователем или где он участник команды
	ListByUser(ctx context.Context, userID int64) ([]domain.Project, error)

	// IncrementLikes увеличивает счётчик лайков и возвращает новое значение
	IncrementLikes(ctx context.Context, projectID int64) (int, error)

	// GetStudentStats считает статистику студента
	GetStudentStats(ctx context.Context, userID int64) (*domain.StudentStats, error)
}

// TeamRequestRepository определяет операции с заявками на формирование команды
//
//go:generate mockery --name=TeamRequestRepository --output=../mocks --outpkg=mocks --filename=team_request_repository_mock.go
type TeamRequestRepository interface {
	// Create создаёт заявку вместе со строками участников
	Create(ctx context.Context, request *domain.TeamRequest) error

	// GetByID возвращает заявку с участниками
	GetByID(ctx context.Context, requestID int64) (*domain.TeamRequest, error)

	// GetByIDForUpdate возвращает заявку с участниками, блокируя строку заявки до конца транзакции
	GetByIDForUpdate(ctx context.Context, requestID int64) (*domain.TeamRequest, error)

	// HasPendingForProject проверяет наличие ожидающей заявки по проекту
	HasPendingForProject(ctx context.Context, projectID int64) (bool, error)

	// UpdateStatus сохраняет status и guide_stage заявки
	UpdateStatus(ctx context.Context, request *domain.TeamRequest) error

	// UpdateMemberReply записывает ответ участника
	UpdateMemberReply(ctx context.Context, requestID, userID int64, reply domain.MemberReplyStatus, repliedAt time.Time) error

	// ListByUser возвращает заявки, где пользователь лидер или участник
	ListByUser(ctx context.Context, userID int64) ([]domain.TeamRequest, error)
}

// TeamRepository определяет операции с командами
//
//go:generate mockery --name=TeamRepository --output=../mocks --outpkg=mocks --filename=team_repository_mock.go
type TeamRepository interface {
	// Create создаёт команду и её участников, повтор по project_id даёт ErrAlreadyExists
	Create(ctx context.Context, team *domain.Team) error

	// GetByProjectID возвращает команду проекта с участниками
	GetByProjectID(ctx context.Context, projectID int64) (*domain.Team, error)

	// IsMember проверяет что пользователь состоит в команде проекта
	IsMember(ctx context.Context, projectID, userID int64) (bool, error)
}

// GuideAssignmentRepository определяет операции с назначениями руководителей
type GuideAssignmentRepository interface {
	// Create создаёт назначение
	Create(ctx context.Context, assignment *domain.GuideAssignment) error

	// GetPending возвращает ожидающее назначение руководителя на команду
	GetPending(ctx context.Context, teamID, guideID int64) (*domain.GuideAssignment, error)

	// UpdateStatus сохраняет статус назначения
	UpdateStatus(ctx context.Context, assignment *domain.GuideAssignment) error

	// ListByTeam возвращает назначения команды, новые первыми
	ListByTeam(ctx context.Context, teamID int64) ([]domain.GuideAssignment, error)

	// ListByGuide возвращает назначения руководителя с данными проекта
	ListByGuide(ctx context.Context, guideID int64) ([]domain.GuideAssignmentView, error)
}

// UserRepository определяет операции с пользователями, студентами и преподавателями
type UserRepository interface {
	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, userID int64) (*domain.User, error)

	// GetStudent возвращает студента по ID пользователя
	GetStudent(ctx context.Context, userID int64) (*domain.Student, error)

	// GetStudents возвращает найденных студентов из списка, отсутствующие пропускаются
	GetStudents(ctx context.Context, userIDs []int64) ([]domain.Student, error)

	// GetFaculty возвращает преподавателя по ID пользователя
	GetFaculty(ctx context.Context, userID int64) (*domain.Faculty, error)

	// ListFacultyByDept возвращает преподавателей кафедры по имени
	ListFacultyByDept(ctx context.Context, deptID int64) ([]domain.Faculty, error)
}

// ReviewRepository определяет операции с ревью проектов
type ReviewRepository interface {
	// Create добавляет ревью со следующим номером
	Create(ctx context.Context, projectID int64, fileURL string) (*domain.ProjectReview, error)

	// ListByProject возвращает ревью проекта по возрастанию номера
	ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectReview, error)
}
