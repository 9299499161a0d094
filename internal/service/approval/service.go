package approval

import (
	"context"
	"fmt"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/approval"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/audit"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/correction"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/leave"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/overtime"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/hanbit-hr/worktime-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// Service runs the two-stage decision flow for every request kind.
// Each decision is one transaction: write the stage, re-derive the
// overall status, fire the side effect if the request just crossed
// into approved, and append the audit entry. The side effect never
// fires twice because it is gated on the prior overall status.
type Service struct {
	db *database.DB
	overtime.OvertimeRepository
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	correction.CorrectionRepository
	performance.GoalRepository
	attendance.AttendanceRepository
	audit.AuditRepository

	defaultLunchMinutes int
}

func NewService(
	db *database.DB,
	overtimeRepository overtime.OvertimeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	correctionRepository correction.CorrectionRepository,
	goalRepository performance.GoalRepository,
	attendanceRepository attendance.AttendanceRepository,
	auditRepository audit.AuditRepository,
	defaultLunchMinutes int,
) *Service {
	return &Service{
		db:                     db,
		OvertimeRepository:     overtimeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		CorrectionRepository:   correctionRepository,
		GoalRepository:         goalRepository,
		AttendanceRepository:   attendanceRepository,
		AuditRepository:        auditRepository,
		defaultLunchMinutes:    defaultLunchMinutes,
	}
}

func stageStatusFor(approve bool) approval.StageStatus {
	if approve {
		return approval.StageApproved
	}
	return approval.StageRejected
}

func auditAction(stage approval.Stage, approve bool) string {
	if approve {
		return fmt.Sprintf("%s_approve", stage)
	}
	return fmt.Sprintf("%s_reject", stage)
}

func applyStage(stages approval.Stages, stage approval.Stage, status approval.StageStatus) approval.Stages {
	if stage == approval.StageManager {
		stages.ManagerStatus = status
	} else {
		stages.HRStatus = status
	}
	return stages
}

func (s *Service) guard(actor user.Actor, stage approval.Stage) error {
	if !approval.ValidStage(stage) {
		return approval.ErrInvalidStage
	}
	if !approval.CanDecide(actor, stage) {
		return approval.ErrStageNotPermitted
	}
	return nil
}

// DecideOvertime records a stage decision on an overtime request.
// Approval has no side effect; the minutes only feed reporting.
func (s *Service) DecideOvertime(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool) (approval.Outcome, error) {
	if err := s.guard(actor, stage); err != nil {
		return approval.Outcome{}, err
	}

	var outcome approval.Outcome
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return s.decideOvertime(context.WithValue(ctx, "tx", tx), actor, id, stage, approve, &outcome)
	})
	if err != nil {
		return approval.Outcome{}, err
	}
	return outcome, nil
}

func (s *Service) decideOvertime(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool, outcome *approval.Outcome) error {
	request, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	stageStatus := stageStatusFor(approve)
	if err := s.OvertimeRepository.SetStage(ctx, id, stage, stageStatus); err != nil {
		return err
	}

	stages := applyStage(approval.Stages{
		ManagerStatus: request.ManagerStatus,
		HRStatus:      request.HRStatus,
	}, stage, stageStatus)

	derived := approval.Derive(stages.ManagerStatus, stages.HRStatus)
	if err := s.OvertimeRepository.SetStatus(ctx, id, derived); err != nil {
		return err
	}
	outcome.Status = derived

	return s.AuditRepository.Append(ctx, audit.Entry{
		ActorUserID: actor.UserID,
		Action:      auditAction(stage, approve),
		TargetType:  "overtime_request",
		TargetID:    id,
	})
}

// DecideLeave records a stage decision on a leave request. When the
// decision flips the request into approved and the type is annual, the
// balance is debited; an overdraw rolls the stage and the overall
// status back to pending instead of failing the transaction.
func (s *Service) DecideLeave(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool) (approval.Outcome, error) {
	if err := s.guard(actor, stage); err != nil {
		return approval.Outcome{}, err
	}

	var outcome approval.Outcome
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return s.decideLeave(context.WithValue(ctx, "tx", tx), actor, id, stage, approve, &outcome)
	})
	if err != nil {
		return approval.Outcome{}, err
	}
	return outcome, nil
}

func (s *Service) decideLeave(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool, outcome *approval.Outcome) error {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	stageStatus := stageStatusFor(approve)
	if err := s.LeaveRequestRepository.SetStage(ctx, id, stage, stageStatus); err != nil {
		return err
	}

	stages := applyStage(approval.Stages{
		ManagerStatus: request.ManagerStatus,
		HRStatus:      request.HRStatus,
	}, stage, stageStatus)

	derived := approval.Derive(stages.ManagerStatus, stages.HRStatus)
	if err := s.LeaveRequestRepository.SetStatus(ctx, id, derived); err != nil {
		return err
	}
	outcome.Status = derived

	if request.Status != approval.StatusApproved && derived == approval.StatusApproved && request.Type == leave.TypeAnnual {
		if _, err := s.LeaveBalanceRepository.GetOrCreate(ctx, request.EmployeeID); err != nil {
			return err
		}
		ok, err := s.LeaveBalanceRepository.Debit(ctx, request.EmployeeID, request.Days())
		if err != nil {
			return err
		}
		if !ok {
			if err := s.LeaveRequestRepository.ResetToPending(ctx, id, stage); err != nil {
				return err
			}
			outcome.Status = approval.StatusPending
			outcome.RolledBack = true
		}
	}

	return s.AuditRepository.Append(ctx, audit.Entry{
		ActorUserID: actor.UserID,
		Action:      auditAction(stage, approve),
		TargetType:  "leave_request",
		TargetID:    id,
	})
}

// DecideCorrection records a stage decision on a correction request.
// Crossing into approved writes the replacement values through to the
// attendance row, creating the day as an office record when absent.
func (s *Service) DecideCorrection(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool) (approval.Outcome, error) {
	if err := s.guard(actor, stage); err != nil {
		return approval.Outcome{}, err
	}

	var outcome approval.Outcome
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return s.decideCorrection(context.WithValue(ctx, "tx", tx), actor, id, stage, approve, &outcome)
	})
	if err != nil {
		return approval.Outcome{}, err
	}
	return outcome, nil
}

func (s *Service) decideCorrection(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool, outcome *approval.Outcome) error {
	request, err := s.CorrectionRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	stageStatus := stageStatusFor(approve)
	if err := s.CorrectionRepository.SetStage(ctx, id, stage, stageStatus); err != nil {
		return err
	}

	stages := applyStage(approval.Stages{
		ManagerStatus: request.ManagerStatus,
		HRStatus:      request.HRStatus,
	}, stage, stageStatus)

	derived := approval.Derive(stages.ManagerStatus, stages.HRStatus)
	if err := s.CorrectionRepository.SetStatus(ctx, id, derived); err != nil {
		return err
	}
	outcome.Status = derived

	if request.Status != approval.StatusApproved && derived == approval.StatusApproved {
		if err := s.applyCorrection(ctx, request); err != nil {
			return err
		}
	}

	return s.AuditRepository.Append(ctx, audit.Entry{
		ActorUserID: actor.UserID,
		Action:      auditAction(stage, approve),
		TargetType:  "correction_request",
		TargetID:    id,
	})
}

// applyCorrection merges the requested replacements over the existing
// attendance row, falling back to the configured lunch default when
// neither the request nor an existing row supplies one.
func (s *Service) applyCorrection(ctx context.Context, request correction.CorrectionRequest) error {
	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, request.EmployeeID, request.Date)
	if err != nil {
		return err
	}

	record := attendance.Record{
		EmployeeID:   request.EmployeeID,
		Date:         request.Date,
		InTime:       request.NewInTime,
		OutTime:      request.NewOutTime,
		LunchMinutes: s.defaultLunchMinutes,
		Mode:         attendance.ModeOffice,
	}
	if existing != nil {
		if record.InTime == nil {
			record.InTime = existing.InTime
		}
		if record.OutTime == nil {
			record.OutTime = existing.OutTime
		}
		record.LunchMinutes = existing.LunchMinutes
		record.Note = existing.Note
	}
	if request.NewLunchMinutes != nil {
		record.LunchMinutes = *request.NewLunchMinutes
	}

	_, err = s.AttendanceRepository.Upsert(ctx, record)
	return err
}

// DecideGoal records a stage decision on a submitted goal. A pending
// derivation keeps the goal in submitted rather than pending, matching
// the draft/submitted lifecycle.
func (s *Service) DecideGoal(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool) (approval.Outcome, error) {
	if err := s.guard(actor, stage); err != nil {
		return approval.Outcome{}, err
	}

	var outcome approval.Outcome
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return s.decideGoal(context.WithValue(ctx, "tx", tx), actor, id, stage, approve, &outcome)
	})
	if err != nil {
		return approval.Outcome{}, err
	}
	return outcome, nil
}

func (s *Service) decideGoal(ctx context.Context, actor user.Actor, id int64, stage approval.Stage, approve bool, outcome *approval.Outcome) error {
	goal, err := s.GoalRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if goal.Status == approval.StatusDraft {
		return approval.ErrNotSubmitted
	}

	stageStatus := stageStatusFor(approve)
	if err := s.GoalRepository.SetStage(ctx, id, stage, stageStatus); err != nil {
		return err
	}

	stages := applyStage(approval.Stages{
		ManagerStatus: goal.ManagerStatus,
		HRStatus:      goal.HRStatus,
	}, stage, stageStatus)

	derived := approval.Derive(stages.ManagerStatus, stages.HRStatus)
	if derived == approval.StatusPending {
		derived = approval.StatusSubmitted
	}
	if err := s.GoalRepository.SetStatus(ctx, id, derived); err != nil {
		return err
	}
	outcome.Status = derived

	return s.AuditRepository.Append(ctx, audit.Entry{
		ActorUserID: actor.UserID,
		Action:      auditAction(stage, approve),
		TargetType:  "goal",
		TargetID:    id,
	})
}
