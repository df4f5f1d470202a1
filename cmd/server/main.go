package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/campustrack/campustrack-backend/internal/config"
	"github.com/campustrack/campustrack-backend/internal/database"
	"github.com/campustrack/campustrack-backend/internal/handler"
	"github.com/campustrack/campustrack-backend/internal/logger"
	"github.com/campustrack/campustrack-backend/internal/repository"
	"github.com/campustrack/campustrack-backend/internal/router"
	"github.com/campustrack/campustrack-backend/internal/service"
	"github.com/campustrack/campustrack-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CampusTrack Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	profileRepo := repository.NewProfileRepository(pool)
	collegeRepo := repository.NewCollegeRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	profileService := service.NewProfileService(profileRepo, authService)
	collegeService := service.NewCollegeService(collegeRepo)
	studentService := service.NewStudentService(studentRepo)
	attendanceService := service.NewAttendanceService(studentRepo, attendanceRepo, log)
	analyticsService := service.NewAnalyticsService(studentRepo, collegeRepo, attendanceRepo, cfg.AnalyticsWindowDays)
	dashboardService := service.NewDashboardService(studentRepo, attendanceRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, profileService),
		Profile:    handler.NewProfileHandler(profileService),
		College:    handler.NewCollegeHandler(collegeService),
		Student:    handler.NewStudentHandler(studentService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Analytics:  handler.NewAnalyticsHandler(analyticsService, dashboardService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
