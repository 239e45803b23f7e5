package task

import "time"

// Task represents a guest-post assignment row on the manager/writer/blogger
// dashboards.
type Task struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	WebsiteDomain string    `json:"websiteDomain"`
	OrderType     OrderType `json:"orderType"`
	CurrentStatus Status    `json:"currentStatus"`
	AssignedTo    string    `json:"assignedTo"`
	DueDate       time.Time `json:"dueDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Status represents task status
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusFinalized  Status = "finalized"
)

// OrderType distinguishes guest posts from plain link insertions.
type OrderType string

const (
	OrderGuestPost     OrderType = "guest_post"
	OrderLinkInsertion OrderType = "link_insertion"
)

// CanFinalize reports whether the task is in a state a manager may finalize.
func (t Task) CanFinalize() bool {
	return t.CurrentStatus == StatusSubmitted || t.CurrentStatus == StatusApproved
}

// CanReject reports whether the task can still be rejected.
func (t Task) CanReject() bool {
	return t.CurrentStatus != StatusFinalized && t.CurrentStatus != StatusRejected
}
