package gorm

import (
	"context"

	"gorm.io/gorm"

	"academicHub/internal/domain"
	"academicHub/internal/storage"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый репозиторий пользователей
func NewUserRepository(db *gorm.DB) storage.UserRepository {
	return &userRepository{db: db}
}

// GetByID получает пользователя по ID
func (r *userRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	var dbUser User
	if err := r.db.WithContext(ctx).First(&dbUser, "user_id = ?", userID).Error; err != nil {
		return nil, translateError(err)
	}

	return &domain.User{
		ID:    dbUser.UserID,
		Name:  dbUser.Name,
		Email: dbUser.Email,
		Role:  domain.UserRole(dbUser.Role),
	}, nil
}

// GetStudent получает студента по ID пользователя
func (r *userRepository) GetStudent(ctx context.Context, userID int64) (*domain.Student, error) {
	var dbStudent Student
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&dbStudent, "user_id = ?", userID).Error
	if err != nil {
		return nil, translateError(err)
	}
	s := studentToDomain(&dbStudent)
	return &s, nil
}

// GetStudents получает студентов из списка, отсутствующие пропускаются
func (r *userRepository) GetStudents(ctx context.Context, userIDs []int64) ([]domain.Student, error) {
	if len(userIDs) == 0 {
		return []domain.Student{}, nil
	}

	var dbStudents []Student
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", userIDs).
		Order("user_id").
		Find(&dbStudents).Error
	if err != nil {
		return nil, translateError(err)
	}

	students := make([]domain.Student, len(dbStudents))
	for i := range dbStudents {
		students[i] = studentToDomain(&dbStudents[i])
	}
	return students, nil
}

// GetFaculty получает преподавателя по ID пользователя
func (r *userRepository) GetFaculty(ctx context.Context, userID int64) (*domain.Faculty, error) {
	var dbFaculty Faculty
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&dbFaculty, "user_id = ?", userID).Error
	if err != nil {
		return nil, translateError(err)
	}
	f := facultyToDomain(&dbFaculty)
	return &f, nil
}

// ListFacultyByDept возвращает преподавателей кафедры по имени
func (r *userRepository) ListFacultyByDept(ctx context.Context, deptID int64) ([]domain.Faculty, error) {
	var dbFaculty []Faculty
	err := r.db.WithContext(ctx).
		Joins("User").
		Where("faculty.dept_id = ?", deptID).
		Order(`"User"."name"`).
		Find(&dbFaculty).Error
	if err != nil {
		return nil, translateError(err)
	}

	faculty := make([]domain.Faculty, len(dbFaculty))
	for i := range dbFaculty {
		faculty[i] = facultyToDomain(&dbFaculty[i])
	}
	return faculty, nil
}
