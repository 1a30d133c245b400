package gorm

import (
	"time"
)

// User - модель БД для пользователя
type User struct {
	UserID int64  `gorm:"column:user_id;primaryKey"`
	Name   string `gorm:"column:name;not null"`
	Email  string `gorm:"column:email;not null"`
	Role   string `gorm:"column:role;not null"`
}

func (User) TableName() string {
	return "users"
}

// Student - модель БД для студента
type Student struct {
	UserID       int64  `gorm:"column:user_id;primaryKey"`
	BatchID      int64  `gorm:"column:batch_id;not null"`
	DeptID       int64  `gorm:"column:dept_id;not null"`
	EnrollmentNo string `gorm:"column:enrollment_no;not null"`
	User         User   `gorm:"foreignKey:UserID;references:UserID"`
}

func (Student) TableName() string {
	return "students"
}

// Faculty - модель БД для преподавателя
type Faculty struct {
	UserID      int64  `gorm:"column:user_id;primaryKey"`
	DeptID      int64  `gorm:"column:dept_id;not null"`
	Designation string `gorm:"column:designation;not null"`
	User        User   `gorm:"foreignKey:UserID;references:UserID"`
}

func (Faculty) TableName() string {
	return "faculty"
}

// Project - модель БД для проекта
type Project struct {
	ProjectID        int64     `gorm:"column:project_id;primaryKey;autoIncrement"`
	Title            string    `gorm:"column:title;not null"`
	Abstract         string    `gorm:"column:abstract;not null"`
	Objective        *string   `gorm:"column:objective"`
	Type             string    `gorm:"column:type;not null"`
	Category         string    `gorm:"column:category;not null"`
	CreatedBy        int64     `gorm:"column:created_by;not null"`
	BatchID          int64     `gorm:"column:batch_id;not null"`
	DeptID           int64     `gorm:"column:dept_id;not null"`
	GuideID          *int64    `gorm:"column:guide_id"`
	Status           string    `gorm:"column:status;not null;default:new"`
	GuideStatus      string    `gorm:"column:guide_status;not null;default:NA"`
	Visibility       string    `gorm:"column:visibility;not null;default:public"`
	IsPublished      bool      `gorm:"column:ispublished;not null;default:false"`
	HostedLink       *string   `gorm:"column:hosted_link"`
	PaperLink        *string   `gorm:"column:paper_link"`
	ConferenceName   *string   `gorm:"column:conference_name"`
	ConferenceYear   *int      `gorm:"column:conference_year"`
	ConferenceStatus *string   `gorm:"column:conference_status"`
	Likes            int       `gorm:"column:likes;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string {
	return "projects"
}

// TeamRequest - модель БД для заявки на формирование команды
type TeamRequest struct {
	RequestID  int64               `gorm:"column:request_id;primaryKey;autoIncrement"`
	ProjectID  int64               `gorm:"column:project_id;not null"`
	LeaderID   int64               `gorm:"column:leader_id;not null"`
	TeamName   string              `gorm:"column:team_name;not null"`
	GuideID    *int64              `gorm:"column:guide_id"`
	Status     string              `gorm:"column:status;not null;default:pending"`
	GuideStage string              `gorm:"column:guide_stage;not null;default:none"`
	CreatedAt  time.Time           `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time           `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
	Members    []TeamRequestMember `gorm:"foreignKey:RequestID;references:RequestID"`
}

func (TeamRequest) TableName() string {
	return "team_requests"
}

// TeamRequestMember - модель БД для участника заявки
type TeamRequestMember struct {
	RequestID   int64      `gorm:"column:request_id;primaryKey"`
	UserID      int64      `gorm:"column:user_id;primaryKey"`
	Role        string     `gorm:"column:role;not null"`
	ReplyStatus string     `gorm:"column:reply_status;not null;default:pending"`
	RepliedAt   *time.Time `gorm:"column:replied_at"`
}

func (TeamRequestMember) TableName() string {
	return "team_request_members"
}

// Team - модель БД для команды
type Team struct {
	TeamID    int64        `gorm:"column:team_id;primaryKey;autoIncrement"`
	ProjectID int64        `gorm:"column:project_id;not null;uniqueIndex"`
	TeamName  string       `gorm:"column:team_name;not null"`
	GuideID   *int64       `gorm:"column:guide_id"`
	CreatedAt time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	Members   []TeamMember `gorm:"foreignKey:TeamID;references:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember - модель БД для связи команды и пользователя
type TeamMember struct {
	TeamID     int64  `gorm:"column:team_id;primaryKey"`
	UserID     int64  `gorm:"column:user_id;primaryKey"`
	RoleInTeam string `gorm:"column:role_in_team;not null"`
	User       User   `gorm:"foreignKey:UserID;references:UserID"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

// GuideAssignment - модель БД для назначения руководителя
type GuideAssignment struct {
	AssignmentID int64     `gorm:"column:assignment_id;primaryKey;autoIncrement"`
	TeamID       int64     `gorm:"column:team_id;not null"`
	GuideID      int64     `gorm:"column:guide_id;not null"`
	Status       string    `gorm:"column:status;not null;default:pending"`
	AssignedOn   time.Time `gorm:"column:assigned_on;not null;default:CURRENT_TIMESTAMP"`
}

func (GuideAssignment) TableName() string {
	return "guide_assignments"
}

// ProjectReview - модель БД для ревью проекта
type ProjectReview struct {
	ReviewID     int64     `gorm:"column:review_id;primaryKey;autoIncrement"`
	ProjectID    int64     `gorm:"column:project_id;not null"`
	ReviewNumber int       `gorm:"column:review_number;not null"`
	FileURL      string    `gorm:"column:file_url;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (ProjectReview) TableName() string {
	return "project_reviews"
}
