package gorm

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"academicHub/internal/domain"
	"academicHub/internal/metrics"
	"academicHub/internal/storage"
)

// txManager реализует storage.TxManager для GORM
type txManager struct {
	db *gorm.DB
}

// NewTxManager создаёт менеджер транзакций поверх открытого соединения
func NewTxManager(db *gorm.DB) storage.TxManager {
	return &txManager{db: db}
}

// Do выполняет функцию внутри транзакции READ COMMITTED с автоматическим commit/rollback
func (tm *txManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	start := time.Now()

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txWrapper := &transaction{
			db: tx,
		}

		if err := fn(ctx, txWrapper); err != nil {
			// GORM автоматически сделает ROLLBACK
			metrics.DBTransactionTotal.WithLabelValues("error").Inc()
			return err
		}

		metrics.DBTransactionTotal.WithLabelValues("success").Inc()
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})

	metrics.DBTransactionDuration.Observe(time.Since(start).Seconds())

	return err
}

// transaction - обёртка над gorm.DB, реализует storage.Tx
type transaction struct {
	db *gorm.DB
}

// ProjectRepo возвращает репозиторий проектов в рамках транзакции
func (t *transaction) ProjectRepo() storage.ProjectRepository {
	return NewProjectRepository(t.db)
}

// TeamRequestRepo возвращает репозиторий заявок в рамках транзакции
func (t *transaction) TeamRequestRepo() storage.TeamRequestRepository {
	return NewTeamRequestRepository(t.db)
}

// TeamRepo возвращает репозиторий команд в рамках транзакции
func (t *transaction) TeamRepo() storage.TeamRepository {
	return NewTeamRepository(t.db)
}

// GuideAssignmentRepo возвращает репозиторий назначений в рамках транзакции
func (t *transaction) GuideAssignmentRepo() storage.GuideAssignmentRepository {
	return NewGuideAssignmentRepository(t.db)
}

// UserRepo возвращает репозиторий пользователей в рамках транзакции
func (t *transaction) UserRepo() storage.UserRepository {
	return NewUserRepository(t.db)
}

// ReviewRepo возвращает репозиторий ревью в рамках транзакции
func (t *transaction) ReviewRepo() storage.ReviewRepository {
	return NewReviewRepository(t.db)
}

// WorkflowSnapshot считает проекты по статусам и ожидающие заявки для gauge метрик
func WorkflowSnapshot(ctx context.Context, db *gorm.DB) (metrics.WorkflowSnapshot, error) {
	type statusRow struct {
		Status string
		Count  int
	}

	var rows []statusRow
	if err := db.WithContext(ctx).
		Model(&Project{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return metrics.WorkflowSnapshot{}, err
	}

	var pending int64
	if err := db.WithContext(ctx).
		Model(&TeamRequest{}).
		Where("status = ?", string(domain.TeamRequestStatusPending)).
		Count(&pending).Error; err != nil {
		return metrics.WorkflowSnapshot{}, err
	}

	snapshot := metrics.WorkflowSnapshot{
		ProjectsByStatus: make(map[string]int, len(rows)),
		PendingRequests:  int(pending),
	}
	for _, r := range rows {
		snapshot.ProjectsByStatus[r.Status] = r.Count
	}
	return snapshot, nil
}
