package storage

import (
	"context"
	"database/sql"
	"fmt"

	"digital-menu/internal/domain"
)

// TableStatsRepository is the sink for flushed session aggregates. Counters
// are additive across sessions of the same table.
type TableStatsRepository struct {
	DB *sql.DB
}

func NewTableStatsRepository(db *sql.DB) *TableStatsRepository {
	return &TableStatsRepository{DB: db}
}

// EnsureSchema creates the stats table if it does not exist yet.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS table_stats (
			table_number  TEXT PRIMARY KEY,
			orders        INTEGER NOT NULL DEFAULT 0,
			total_spent   BIGINT NOT NULL DEFAULT 0,
			waiter_calls  INTEGER NOT NULL DEFAULT 0,
			bill_requests INTEGER NOT NULL DEFAULT 0,
			last_activity TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (r *TableStatsRepository) UpsertTableStats(ctx context.Context, stats domain.TableStats) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO table_stats (table_number, orders, total_spent, waiter_calls, bill_requests, last_activity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (table_number) DO UPDATE SET
			orders        = table_stats.orders + EXCLUDED.orders,
			total_spent   = table_stats.total_spent + EXCLUDED.total_spent,
			waiter_calls  = table_stats.waiter_calls + EXCLUDED.waiter_calls,
			bill_requests = table_stats.bill_requests + EXCLUDED.bill_requests,
			last_activity = EXCLUDED.last_activity
	`, stats.Table, stats.Orders, int64(stats.TotalSpent), stats.WaiterCalls, stats.BillRequests, stats.LastActivity)
	return err
}
