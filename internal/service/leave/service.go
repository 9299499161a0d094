package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/leave"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

type Service struct {
	db *database.DB
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
}

func NewService(db *database.DB, leaveRequestRepository leave.LeaveRequestRepository, leaveBalanceRepository leave.LeaveBalanceRepository) *Service {
	return &Service{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
	}
}

// CreateRequest files a leave request for the employee. Both stages
// start pending; nothing touches the balance until final approval.
func (s *Service) CreateRequest(ctx context.Context, employeeID int64, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	// An annual request will need a ledger row at approval time; make
	// sure it exists up front so the balance endpoint reflects it.
	if leave.LeaveType(req.Type) == leave.TypeAnnual {
		if _, err := s.LeaveBalanceRepository.GetOrCreate(ctx, employeeID); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Type:       leave.LeaveType(req.Type),
		Reason:     req.Reason,
	}
	return s.LeaveRequestRepository.Create(ctx, request)
}

// List returns leave requests within the actor's visibility scope.
func (s *Service) List(ctx context.Context, actor user.Actor) ([]leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.List(ctx, user.VisibilityFor(actor))
}

// Get fetches one request within the actor's visibility scope. An
// out-of-scope id reads as not found.
func (s *Service) Get(ctx context.Context, actor user.Actor, id int64) (leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.GetVisible(ctx, id, user.VisibilityFor(actor))
}

// Balance returns the employee's annual ledger, creating the default
// entitlement row on first access.
func (s *Service) Balance(ctx context.Context, employeeID int64) (leave.BalanceResponse, error) {
	balance, err := s.LeaveBalanceRepository.GetOrCreate(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return leave.BalanceResponse{
		EmployeeID:  balance.EmployeeID,
		AnnualTotal: balance.AnnualTotal,
		AnnualUsed:  balance.AnnualUsed,
		Remaining:   balance.Remaining(),
	}, nil
}

// SetBalanceTotal adjusts an employee's annual entitlement.
func (s *Service) SetBalanceTotal(ctx context.Context, req leave.SetBalanceTotalRequest) (leave.BalanceResponse, error) {
	if err := s.LeaveBalanceRepository.SetTotal(ctx, req.EmployeeID, req.Total); err != nil {
		return leave.BalanceResponse{}, err
	}
	return s.Balance(ctx, req.EmployeeID)
}
