package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
	shiftService "github.com/attendly/attendance-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	systemClock := clock.NewSystemClock()

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, shiftRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		txManager,
		systemClock,
		loc,
		cfg.Attendance.AllowNegativeBalance,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, systemClock, loc)

	if err := shiftSvc.EnsureDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed default shifts:", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		shiftHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
