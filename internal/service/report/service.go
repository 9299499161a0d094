package report

import (
	"context"
	"time"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/master/holiday"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/performance"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/report"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/worktime"
)

type Service struct {
	db *database.DB
	report.ReportRepository
	attendance.AttendanceRepository
	holiday.HolidayRepository
	performance.GoalRepository
	performance.ReviewRepository

	weeklyCapMinutes int
}

func NewService(
	db *database.DB,
	reportRepository report.ReportRepository,
	attendanceRepository attendance.AttendanceRepository,
	holidayRepository holiday.HolidayRepository,
	goalRepository performance.GoalRepository,
	reviewRepository performance.ReviewRepository,
	weeklyCapMinutes int,
) *Service {
	return &Service{
		db:                   db,
		ReportRepository:     reportRepository,
		AttendanceRepository: attendanceRepository,
		HolidayRepository:    holidayRepository,
		GoalRepository:       goalRepository,
		ReviewRepository:     reviewRepository,
		weeklyCapMinutes:     weeklyCapMinutes,
	}
}

// Overview returns the per-employee attendance snapshot for a date.
func (s *Service) Overview(ctx context.Context, filter report.OverviewFilter) ([]report.OverviewRow, error) {
	return s.ReportRepository.Overview(ctx, filter)
}

// WeeklySummary aggregates one employee's buckets over the Monday to
// Sunday week containing date. All seven days appear; days without a
// record carry zero buckets.
func (s *Service) WeeklySummary(ctx context.Context, employeeID int64, date time.Time) (report.WeeklySummary, error) {
	weekStart, weekEnd := worktime.WeekRange(date)

	records, err := s.AttendanceRepository.GetRange(ctx, employeeID, weekStart, weekEnd)
	if err != nil {
		return report.WeeklySummary{}, err
	}
	holidays, err := s.HolidayRepository.DatesBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return report.WeeklySummary{}, err
	}

	byDate := make(map[string]attendance.Record, len(records))
	for _, record := range records {
		byDate[record.Date.Format("2006-01-02")] = record
	}

	summary := report.WeeklySummary{
		EmployeeID: employeeID,
		WeekStart:  weekStart.Format("2006-01-02"),
		WeekEnd:    weekEnd.Format("2006-01-02"),
		Days:       make([]report.WeekDay, 0, 7),
		WeeklyCap:  s.weeklyCapMinutes,
	}

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		weekDay := report.WeekDay{Date: key}

		if record, ok := byDate[key]; ok {
			buckets, err := worktime.Calculate(record.InTime, record.OutTime, record.LunchMinutes, day, holidays[key])
			if err != nil {
				return report.WeeklySummary{}, err
			}
			weekDay.InTime = record.InTime
			weekDay.OutTime = record.OutTime
			weekDay.Buckets = buckets

			summary.Totals.Regular += buckets.Regular
			summary.Totals.Overtime += buckets.Overtime
			summary.Totals.Night += buckets.Night
			summary.Totals.Holiday += buckets.Holiday
			summary.Totals.Total += buckets.Total
		}

		summary.Days = append(summary.Days, weekDay)
	}

	summary.OverCap = summary.Totals.Total > s.weeklyCapMinutes
	summary.TotalFormatted = worktime.FormatMinutes(summary.Totals.Total)

	return summary, nil
}

// Dashboard builds the quarter/period performance summary. The top and
// bottom standings come from goal progress averages; ties keep the
// earliest-seen employee.
func (s *Service) Dashboard(ctx context.Context, quarter, period string) (report.Dashboard, error) {
	goalAverages, err := s.GoalRepository.ProgressAverages(ctx, &quarter)
	if err != nil {
		return report.Dashboard{}, err
	}
	reviewAverages, err := s.ReviewRepository.ScoreAverages(ctx, &period)
	if err != nil {
		return report.Dashboard{}, err
	}
	pending, err := s.GoalRepository.CountAwaitingAction(ctx)
	if err != nil {
		return report.Dashboard{}, err
	}

	dashboard := report.Dashboard{
		Quarter:        quarter,
		Period:         period,
		GoalAverages:   goalAverages,
		ReviewAverages: reviewAverages,
		PendingGoals:   pending,
	}
	dashboard.TopPerformer, dashboard.BottomPerformer = standings(goalAverages)

	return dashboard, nil
}

func standings(averages []performance.EmployeeAverage) (top, bottom *report.PerformerStanding) {
	for _, avg := range averages {
		if top == nil || avg.Average > top.Average {
			top = &report.PerformerStanding{EmployeeID: avg.EmployeeID, Average: avg.Average, Count: avg.Count}
		}
		if bottom == nil || avg.Average < bottom.Average {
			bottom = &report.PerformerStanding{EmployeeID: avg.EmployeeID, Average: avg.Average, Count: avg.Count}
		}
	}
	return top, bottom
}
