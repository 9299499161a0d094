package audit

import "time"

// Entry is an append-only trail record. The approval engine writes one
// for every stage transition inside the same transaction.
type Entry struct {
	ID          int64
	ActorUserID int64
	Action      string // e.g. "manager_approve", "hr_reject"
	TargetType  string // e.g. "leave_request"
	TargetID    int64
	Detail      *string
	CreatedAt   time.Time
}
