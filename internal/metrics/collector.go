package metrics

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// PoolStatter отдаёт статистику connection pool, *sql.DB реализует его
type PoolStatter interface {
	Stats() sql.DBStats
}

// WorkflowSnapshot - агрегаты из БД, пересчитываемые периодически
type WorkflowSnapshot struct {
	ProjectsByStatus map[string]int
	PendingRequests  int
}

// SnapshotFunc читает WorkflowSnapshot из хранилища
type SnapshotFunc func() (WorkflowSnapshot, error)

// RecordPoolStats обновляет метрики connection pool
func RecordPoolStats(stats sql.DBStats) {
	DBConnectionPoolActive.Set(float64(stats.InUse))
	DBConnectionPoolIdle.Set(float64(stats.Idle))
}

// RecordWorkflowSnapshot заменяет значения gauge метрик workflow
func RecordWorkflowSnapshot(snapshot WorkflowSnapshot) {
	// Сбрасываем метрику, чтобы исчезнувшие статусы не висели со старым значением
	ProjectStatusCount.Reset()
	for status, count := range snapshot.ProjectsByStatus {
		ProjectStatusCount.WithLabelValues(status).Set(float64(count))
	}
	TeamRequestPendingCount.Set(float64(snapshot.PendingRequests))
}

// StartDBStatsCollector запускает цикл периодического сбора статистики connection pool
func StartDBStatsCollector(db PoolStatter, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := db.Stats()
			RecordPoolStats(stats)

			log.Debug().
				Int("in_use", stats.InUse).
				Int("idle", stats.Idle).
				Int("max_open", stats.MaxOpenConnections).
				Msg("updated db connection pool metrics")

		case <-stopCh:
			log.Info().Msg("stopping db stats collector")
			return
		}
	}
}

// StartWorkflowReconciler периодически пересчитывает gauge метрики workflow из БД
func StartWorkflowReconciler(snapshot SnapshotFunc, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s, err := snapshot()
			if err != nil {
				log.Error().Err(err).Msg("failed to read workflow snapshot")
				continue
			}
			RecordWorkflowSnapshot(s)

			log.Debug().
				Int("pending_requests", s.PendingRequests).
				Int("statuses", len(s.ProjectsByStatus)).
				Msg("updated workflow metrics")

		case <-stopCh:
			log.Info().Msg("stopping metrics reconciliation goroutine")
			return
		}
	}
}
