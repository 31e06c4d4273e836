package sweep

import (
	"sync"
	"time"
)

// Status is the driver's lifecycle state as reported on /status.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
	StatusCanceled Status = "canceled"
	StatusError    Status = "error"
)

// Progress tracks how far a sweep has come. It is written by the driver
// goroutine and read by the status endpoint.
type Progress struct {
	mu        sync.Mutex
	status    Status
	planned   int
	completed int
	reused    int
	failed    int
	skipped   int
	current   string
	startedAt time.Time
	lastError string
}

// Snapshot is a point-in-time copy of Progress.
type Snapshot struct {
	Status    Status    `json:"status"`
	Planned   int       `json:"planned"`
	Completed int       `json:"completed"`
	Reused    int       `json:"reused"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Current   string    `json:"current,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

// NewProgress returns an idle tracker.
func NewProgress() *Progress {
	return &Progress{status: StatusIdle}
}

func (p *Progress) begin(planned int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = StatusRunning
	p.planned = planned
	p.startedAt = time.Now()
}

func (p *Progress) running(job string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = job
}

func (p *Progress) record(outcome func(p *Progress)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	outcome(p)
	p.current = ""
}

func (p *Progress) succeeded() {
	p.record(func(p *Progress) { p.completed++ })
}

func (p *Progress) reusedRun() {
	p.record(func(p *Progress) { p.reused++ })
}

func (p *Progress) skippedRun() {
	p.record(func(p *Progress) { p.skipped++ })
}

// interrupted clears the current job without counting it as an outcome.
func (p *Progress) interrupted() {
	p.record(func(*Progress) {})
}

func (p *Progress) failedRun(err error) {
	p.record(func(p *Progress) {
		p.failed++
		p.lastError = err.Error()
	})
}

func (p *Progress) finish(status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
	p.current = ""
}

// Snapshot returns a consistent copy of the counters.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Status:    p.status,
		Planned:   p.planned,
		Completed: p.completed,
		Reused:    p.reused,
		Failed:    p.failed,
		Skipped:   p.skipped,
		Current:   p.current,
		StartedAt: p.startedAt,
		LastError: p.lastError,
	}
}
