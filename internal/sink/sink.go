package sink

import (
	"fmt"
	"sync"
	"time"
)

type Kind string

const (
	KindAudit      Kind = "AUDIT"
	KindUserAction Kind = "USER_ACTION"
	KindError      Kind = "ERROR"
)

type Event struct {
	At      time.Time
	Kind    Kind
	Subject string // usually a user id or "simulation"
	Detail  string
}

// Line renders the artifact/report form: timestamp;type;subject;detail.
func (e Event) Line() string {
	return fmt.Sprintf("%d;%s;%s;%s", e.At.UnixNano(), e.Kind, e.Subject, e.Detail)
}

// Sink accumulates the two per-cycle event streams: the internal audit log
// and the external user-flow report. Appends are safe for concurrent use by
// all session runners; events from one session keep their emission order.
type Sink struct {
	mu     sync.Mutex
	audit  []Event
	report []Event
}

func New() *Sink { return &Sink{} }

func (s *Sink) Audit(subject, detail string) {
	s.append(&s.audit, Event{At: time.Now().UTC(), Kind: KindAudit, Subject: subject, Detail: detail})
}

func (s *Sink) Action(subject, detail string) {
	s.append(&s.report, Event{At: time.Now().UTC(), Kind: KindUserAction, Subject: subject, Detail: detail})
}

func (s *Sink) Error(subject, detail string) {
	e := Event{At: time.Now().UTC(), Kind: KindError, Subject: subject, Detail: detail}
	s.mu.Lock()
	// injected and operational errors belong to both streams
	s.audit = append(s.audit, e)
	s.report = append(s.report, e)
	s.mu.Unlock()
}

// Reject records an error-kind event on the audit stream only; rejected
// orders are internal bookkeeping, not part of the external report.
func (s *Sink) Reject(subject, detail string) {
	s.append(&s.audit, Event{At: time.Now().UTC(), Kind: KindError, Subject: subject, Detail: detail})
}

func (s *Sink) append(buf *[]Event, e Event) {
	s.mu.Lock()
	*buf = append(*buf, e)
	s.mu.Unlock()
}

// Drain returns both buffers and clears them for the next cycle.
func (s *Sink) Drain() (audit, report []Event) {
	s.mu.Lock()
	audit, report = s.audit, s.report
	s.audit, s.report = nil, nil
	s.mu.Unlock()
	return audit, report
}
