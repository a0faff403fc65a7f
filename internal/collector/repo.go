package collector

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ariefcatur/go-shop-sim.git/internal/report"
)

type Repo struct{ DB *pgxpool.Pool }

// InsertBatch stores one row per report line. Lines that do not parse as
// timestamp;type;subject;detail are skipped, not fatal: a bad line must not
// poison the batch.
func (r *Repo) InsertBatch(ctx context.Context, b report.CycleBatch) error {
	batch := &pgx.Batch{}
	for _, line := range b.Lines {
		parts := strings.SplitN(line, ";", 4)
		if len(parts) != 4 {
			log.Printf("collector: skipping malformed line %q", line)
			continue
		}
		ts, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			log.Printf("collector: skipping line with bad timestamp %q", line)
			continue
		}
		batch.Queue(`
			INSERT INTO flow_events(batch_id, cycle, producer, event_ts, event_type, subject, detail)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			b.BatchID, b.Cycle, b.Producer, ts, parts[1], parts[2], parts[3],
		)
	}
	if batch.Len() == 0 {
		return nil
	}
	return r.DB.SendBatch(ctx, batch).Close()
}

// CountsByType powers the /stats endpoint.
func (r *Repo) CountsByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx, `SELECT event_type, COUNT(*) FROM flow_events GROUP BY event_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		out[t] = n
	}
	return out, rows.Err()
}
