package approval

import (
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
)

// Stage is one of the two independent approval gates on a request.
type Stage string

const (
	StageManager Stage = "manager"
	StageHR      Stage = "hr"
)

func ValidStage(s Stage) bool {
	return s == StageManager || s == StageHR
}

// StageStatus is the state of a single gate.
type StageStatus string

const (
	StagePending  StageStatus = "pending"
	StageApproved StageStatus = "approved"
	StageRejected StageStatus = "rejected"
)

// Status is the derived overall state of a request. Goals additionally
// pass through draft/submitted before the two-stage derivation applies.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// Derive computes the overall status from the two stage values. It is a
// pure reducer: recomputed after every stage write, idempotent, and
// independent of the order the stages were decided in.
func Derive(manager, hr StageStatus) Status {
	if manager == StageRejected || hr == StageRejected {
		return StatusRejected
	}
	if manager == StageApproved && hr == StageApproved {
		return StatusApproved
	}
	return StatusPending
}

// CanDecide reports whether an actor may act on the given stage.
func CanDecide(a user.Actor, stage Stage) bool {
	switch a.Role {
	case user.RoleAdmin:
		return true
	case user.RoleManager:
		return stage == StageManager
	case user.RoleHR:
		return stage == StageHR
	}
	return false
}

// Outcome reports the result of a stage decision to the caller.
// RolledBack is set when a leave approval would have overdrawn the
// balance and both the stage and overall status were reset to pending;
// on disk this is indistinguishable from "not yet acted on".
type Outcome struct {
	Status     Status `json:"status"`
	RolledBack bool   `json:"rolled_back"`
}

// Stages is the embedded pair of gate columns shared by all request kinds.
type Stages struct {
	ManagerStatus StageStatus
	HRStatus      StageStatus
}
