package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/timetrack-hq/timetrack-backend-go/internal/config"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/report"
	"github.com/timetrack-hq/timetrack-backend-go/internal/fixtures"
	appHTTP "github.com/timetrack-hq/timetrack-backend-go/internal/handler/http"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/database"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/jwt"
	"github.com/timetrack-hq/timetrack-backend-go/internal/repository/memory"
	"github.com/timetrack-hq/timetrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timetrack-hq/timetrack-backend-go/internal/service/attendance"
	serviceAuth "github.com/timetrack-hq/timetrack-backend-go/internal/service/auth"
	exportService "github.com/timetrack-hq/timetrack-backend-go/internal/service/export"
	reportService "github.com/timetrack-hq/timetrack-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var attendanceRepo attendance.AttendanceRepository
	var employeeRepo employee.EmployeeRepository

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		memRepo := memory.NewAttendanceRepository()
		memRepo.Seed(fixtures.DemoAttendanceRecords())
		attendanceRepo = memRepo
		employeeRepo = memory.NewEmployeeRepository(fixtures.DemoEmployees())
	case config.StorageDriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		employeeRepo = postgresql.NewEmployeeRepository(db)
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	workStart, err := report.ParseTimeOfDay(cfg.WorkHours.StartTime)
	if err != nil {
		log.Fatal("Invalid work start time: ", err)
	}
	workEnd, err := report.ParseTimeOfDay(cfg.WorkHours.EndTime)
	if err != nil {
		log.Fatal("Invalid work end time: ", err)
	}
	lateCutoff := workStart.AddMinutes(cfg.WorkHours.LateGraceMinutes)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Geofence)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, lateCutoff, workEnd)
	exportSvc := exportService.NewExportService(attendanceRepo, employeeRepo)
	authSvc := serviceAuth.NewAuthService(employeeRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, exportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		authHandler,
		attendanceHandler,
		reportHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
