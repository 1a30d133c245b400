package gorm

import (
	"context"

	"gorm.io/gorm"

	"academicHub/internal/domain"
	"academicHub/internal/storage"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository создаёт новый репозиторий ревью
func NewReviewRepository(db *gorm.DB) storage.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create добавляет ревью со следующим номером по проекту
func (r *reviewRepository) Create(ctx context.Context, projectID int64, fileURL string) (*domain.ProjectReview, error) {
	var dbReview ProjectReview
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO project_reviews (project_id, review_number, file_url)
		SELECT ?, COALESCE(MAX(review_number), 0) + 1, ?
		FROM project_reviews WHERE project_id = ?
		RETURNING review_id, project_id, review_number, file_url, created_at
	`, projectID, fileURL, projectID).Scan(&dbReview).Error
	if err != nil {
		return nil, translateError(err)
	}

	return &domain.ProjectReview{
		ID:           dbReview.ReviewID,
		ProjectID:    dbReview.ProjectID,
		ReviewNumber: dbReview.ReviewNumber,
		FileURL:      dbReview.FileURL,
		CreatedAt:    dbReview.CreatedAt,
	}, nil
}

// ListByProject возвращает ревью проекта по возрастанию номера
func (r *reviewRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectReview, error) {
	var dbReviews []ProjectReview
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("review_number").
		Find(&dbReviews).Error
	if err != nil {
		return nil, translateError(err)
	}

	reviews := make([]domain.ProjectReview, len(dbReviews))
	for i, rv := range dbReviews {
		reviews[i] = domain.ProjectReview{
			ID:           rv.ReviewID,
			ProjectID:    rv.ProjectID,
			ReviewNumber: rv.ReviewNumber,
			FileURL:      rv.FileURL,
			CreatedAt:    rv.CreatedAt,
		}
	}
	return reviews, nil
}
