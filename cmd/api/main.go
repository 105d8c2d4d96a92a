package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/config"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/kepegawaian-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
	postgrestRepo "github.com/cmlabs-hris/kepegawaian-backend-go/internal/repository/postgrest"
	sqliteRepo "github.com/cmlabs-hris/kepegawaian-backend-go/internal/repository/sqlite"
	attendanceService "github.com/cmlabs-hris/kepegawaian-backend-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/kepegawaian-backend-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/kepegawaian-backend-go/internal/service/employee"
	positionService "github.com/cmlabs-hris/kepegawaian-backend-go/internal/service/position"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// The backend stores tunjangan as numeric; send it as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kepegawaian"),
		slog.String("env", cfg.App.Env),
	)

	client := postgrest.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.HTTPTimeout)

	// The employee store is swappable; jabatan, presensi, and admin live
	// on the remote backend in every build.
	var employeeRepo employee.Repository
	switch cfg.Store.Backend {
	case config.BackendLocal:
		db, err := sqliteRepo.Open(cfg.Store.LocalDBPath)
		if err != nil {
			log.Fatal("Failed to open local store: ", err)
		}
		defer db.Close()
		employeeRepo = sqliteRepo.NewEmployeeRepository(db, logger)
	default:
		employeeRepo = postgrestRepo.NewEmployeeRepository(client)
	}

	positionRepo := postgrestRepo.NewPositionRepository(client)
	attendanceRepo := postgrestRepo.NewAttendanceRepository(client)
	adminRepo := postgrestRepo.NewAdminRepository(client)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	positionSvc := positionService.NewPositionService(positionRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, logger)
	authSvc := authService.NewAuthService(adminRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	positionHandler := appHTTP.NewPositionHandler(positionSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		logger,
		authHandler,
		employeeHandler,
		positionHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
