package sim

import (
	"sync"
	"time"
)

// StatusSnapshot is the JSON shape served by the status endpoint.
type StatusSnapshot struct {
	Cycle          int       `json:"cycle"`
	Users          int       `json:"users"`
	Products       int       `json:"products"`
	AcceptedOrders int       `json:"accepted_orders"`
	RejectedOrders int       `json:"rejected_orders"`
	AuditEvents    int       `json:"audit_events"`
	ReportEvents   int       `json:"report_events"`
	PublishedAt    time.Time `json:"published_at"`
}

// Status is the scheduler's live view for the HTTP status endpoint. Updated
// once per cycle, after publication.
type Status struct {
	mu   sync.Mutex
	last StatusSnapshot
}

func (s *Status) set(snap StatusSnapshot) {
	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()
}

func (s *Status) Snapshot() StatusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
