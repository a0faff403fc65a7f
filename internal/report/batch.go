package report

// Topics for the analytics pipeline. One batch message per cycle.
const (
	TopicCycleReport = "sim.cycle.report"
)

// CycleBatch carries one cycle's user-flow report to the remote collector:
// a cycle timestamp plus the ordered report lines. Delivery is best-effort,
// the simulation never waits on an acknowledgment.
type CycleBatch struct {
	BatchID   string   `json:"batch_id"` // uuid, dedup key on the consumer side
	Cycle     int      `json:"cycle"`
	Timestamp int64    `json:"timestamp"` // unix millis at publication
	Producer  string   `json:"producer"`
	Lines     []string `json:"lines"` // timestamp;type;subject;detail
}

// PartitionKey keeps all batches of one producer on one partition so the
// collector sees its cycles in order.
func PartitionKey(producer string) []byte { return []byte(producer) }
