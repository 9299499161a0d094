package main

import (
	"fmt"
	"net/http"

	"github.com/hanbit-hr/worktime-backend-go/internal/config"
	appHTTP "github.com/hanbit-hr/worktime-backend-go/internal/handler/http"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/jwt"
	"github.com/hanbit-hr/worktime-backend-go/internal/repository/postgresql"
	approvalService "github.com/hanbit-hr/worktime-backend-go/internal/service/approval"
	attendanceService "github.com/hanbit-hr/worktime-backend-go/internal/service/attendance"
	authService "github.com/hanbit-hr/worktime-backend-go/internal/service/auth"
	correctionService "github.com/hanbit-hr/worktime-backend-go/internal/service/correction"
	employeeService "github.com/hanbit-hr/worktime-backend-go/internal/service/employee"
	leaveService "github.com/hanbit-hr/worktime-backend-go/internal/service/leave"
	masterService "github.com/hanbit-hr/worktime-backend-go/internal/service/master"
	overtimeService "github.com/hanbit-hr/worktime-backend-go/internal/service/overtime"
	performanceService "github.com/hanbit-hr/worktime-backend-go/internal/service/performance"
	reportService "github.com/hanbit-hr/worktime-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db, cfg.Work.AnnualLeaveDays)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db, cfg.Work.AnnualLeaveDays)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	competencyRepo := postgresql.NewCompetencyRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewService(db, userRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewService(db, employeeRepo)
	attendanceSvc := attendanceService.NewService(db, attendanceRepo, holidayRepo, cfg.Work.DefaultLunchMinutes)
	overtimeSvc := overtimeService.NewService(db, overtimeRepo)
	leaveSvc := leaveService.NewService(db, leaveRequestRepo, leaveBalanceRepo)
	correctionSvc := correctionService.NewService(db, correctionRepo)
	performanceSvc := performanceService.NewService(db, goalRepo, reviewRepo, competencyRepo, feedbackRepo, auditRepo)
	approvalSvc := approvalService.NewService(
		db,
		overtimeRepo,
		leaveRequestRepo,
		leaveBalanceRepo,
		correctionRepo,
		goalRepo,
		attendanceRepo,
		auditRepo,
		cfg.Work.DefaultLunchMinutes,
	)
	reportSvc := reportService.NewService(db, reportRepo, attendanceRepo, holidayRepo, goalRepo, reviewRepo, cfg.Work.WeeklyCapMinutes)
	masterSvc := masterService.NewService(db, departmentRepo, holidayRepo, auditRepo)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, JWTService),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Overtime:    appHTTP.NewOvertimeHandler(overtimeSvc, approvalSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc, approvalSvc),
		Correction:  appHTTP.NewCorrectionHandler(correctionSvc, approvalSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc, approvalSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Master:      appHTTP.NewMasterHandler(masterSvc),
	}

	router := appHTTP.NewRouter(cfg.App.Env, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
