package master

import (
	"context"
	"fmt"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/audit"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/department"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
)

// Service covers the small master-data surfaces: departments, the
// holiday calendar and the audit trail listing.
type Service struct {
	db *database.DB
	department.DepartmentRepository
	holiday.HolidayRepository
	audit.AuditRepository
}

func NewService(db *database.DB, departmentRepository department.DepartmentRepository, holidayRepository holiday.HolidayRepository, auditRepository audit.AuditRepository) *Service {
	return &Service{
		db:                   db,
		DepartmentRepository: departmentRepository,
		HolidayRepository:    holidayRepository,
		AuditRepository:      auditRepository,
	}
}

func (s *Service) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	return s.DepartmentRepository.Create(ctx, department.Department{Name: req.Name})
}

func (s *Service) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.DepartmentRepository.List(ctx)
}

func (s *Service) AddHoliday(ctx context.Context, req holiday.AddHolidayRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("failed to parse holiday date: %w", err)
	}
	return s.HolidayRepository.Add(ctx, holiday.Holiday{Date: date, Name: req.Name})
}

func (s *Service) DeleteHoliday(ctx context.Context, date time.Time) error {
	return s.HolidayRepository.Delete(ctx, date)
}

func (s *Service) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	return s.HolidayRepository.List(ctx)
}

func (s *Service) RecentAuditEntries(ctx context.Context, limit int) ([]audit.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.AuditRepository.Recent(ctx, limit)
}
