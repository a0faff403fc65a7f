package redisx

import "time"

const (
	// Last published cycle per producer: sim:cycle:{producer} -> cycle summary JSON
	KeyCycleSummary = "sim:cycle:%s"

	// Dedup of report batches on the collector: dedup:{service}:{batch_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLCycleSummary = 5 * time.Minute
	TTLDedup        = 48 * time.Hour
)
