package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/worktime"
)

type Service struct {
	db *database.DB
	attendance.AttendanceRepository
	holiday.HolidayRepository

	defaultLunchMinutes int
}

func NewService(db *database.DB, attendanceRepository attendance.AttendanceRepository, holidayRepository holiday.HolidayRepository, defaultLunchMinutes int) *Service {
	return &Service{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		HolidayRepository:    holidayRepository,
		defaultLunchMinutes:  defaultLunchMinutes,
	}
}

// ClockIn opens the employee's attendance row for the day.
func (s *Service) ClockIn(ctx context.Context, employeeID int64, req attendance.ClockInRequest) (attendance.Record, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Record{}, err
	}
	if existing != nil && existing.InTime != nil {
		return attendance.Record{}, attendance.ErrAlreadyClockedIn
	}

	mode := attendance.ModeOffice
	if req.Mode != nil {
		mode = attendance.WorkMode(*req.Mode)
	}

	if existing != nil {
		existing.InTime = &req.InTime
		existing.Mode = mode
		if req.Note != nil {
			existing.Note = req.Note
		}
		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.Record{}, err
		}
		return *existing, nil
	}

	record := attendance.Record{
		EmployeeID:   employeeID,
		Date:         date,
		InTime:       &req.InTime,
		LunchMinutes: s.defaultLunchMinutes,
		Mode:         mode,
		Note:         req.Note,
	}
	return s.AttendanceRepository.Create(ctx, record)
}

// ClockOut closes the day. The lunch override replaces the default set
// at clock-in.
func (s *Service) ClockOut(ctx context.Context, employeeID int64, req attendance.ClockOutRequest) (attendance.Record, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Record{}, err
	}
	if existing == nil || existing.InTime == nil {
		return attendance.Record{}, attendance.ErrNotClockedIn
	}
	if existing.OutTime != nil {
		return attendance.Record{}, attendance.ErrAlreadyClockedOut
	}

	existing.OutTime = &req.OutTime
	if req.LunchMinutes != nil {
		existing.LunchMinutes = *req.LunchMinutes
	}
	if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
		return attendance.Record{}, err
	}
	return *existing, nil
}

// Day returns one attendance record with its computed buckets.
func (s *Service) Day(ctx context.Context, employeeID int64, date time.Time) (attendance.DayResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.DayResponse{}, err
	}
	if record == nil {
		return attendance.DayResponse{}, attendance.ErrRecordNotFound
	}

	isHoliday, err := s.HolidayRepository.IsHoliday(ctx, date)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	return s.toDayResponse(*record, isHoliday)
}

// Range returns the employee's records in [start, end], each with its
// buckets. Holidays are resolved once for the whole span.
func (s *Service) Range(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.DayResponse, error) {
	records, err := s.AttendanceRepository.GetRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	holidays, err := s.HolidayRepository.DatesBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	days := make([]attendance.DayResponse, 0, len(records))
	for _, record := range records {
		day, err := s.toDayResponse(record, holidays[record.Date.Format("2006-01-02")])
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, nil
}

func (s *Service) toDayResponse(record attendance.Record, isHoliday bool) (attendance.DayResponse, error) {
	buckets, err := worktime.Calculate(record.InTime, record.OutTime, record.LunchMinutes, record.Date, isHoliday)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	return attendance.DayResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		Date:         record.Date.Format("2006-01-02"),
		InTime:       record.InTime,
		OutTime:      record.OutTime,
		LunchMinutes: record.LunchMinutes,
		Mode:         record.Mode,
		Note:         record.Note,
		Buckets:      buckets,
	}, nil
}
