package audit

import "time"

// Entry is one recorded mutation dispatch: who did what to which record, and
// how the upstream answered.
type Entry struct {
	ID        int64     `json:"id"`
	ActorID   int64     `json:"actorId"`
	ActorName string    `json:"actorName"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	RecordID  int64     `json:"recordId"`
	Outcome   Outcome   `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Outcome represents how a dispatch ended
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)
