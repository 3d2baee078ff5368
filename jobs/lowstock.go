package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LowStockScanJob walks the product table and logs every product at or below
// the configured stock threshold. The log line is the alert sink for now;
// a pharmacy back office watches these to plan reorders.
type LowStockScanJob struct {
	pool             *pgxpool.Pool
	logger           *slog.Logger
	defaultThreshold int
}

// NewLowStockScanJob constructs the job.
func NewLowStockScanJob(pool *pgxpool.Pool, logger *slog.Logger, defaultThreshold int) *LowStockScanJob {
	return &LowStockScanJob{pool: pool, logger: logger, defaultThreshold: defaultThreshold}
}

// Handle processes TaskLowStockScan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload LowStockScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	threshold := payload.Threshold
	if threshold <= 0 {
		threshold = j.defaultThreshold
	}

	const query = `SELECT id, name, stock FROM products WHERE stock <= $1 ORDER BY stock`
	rows, err := j.pool.Query(ctx, query, threshold)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			name  string
			stock int
		)
		if err := rows.Scan(&id, &name, &stock); err != nil {
			return err
		}
		j.logger.Warn("low stock",
			slog.Int64("product_id", id),
			slog.String("name", name),
			slog.Int("stock", stock),
			slog.Int("threshold", threshold),
		)
	}
	return rows.Err()
}
