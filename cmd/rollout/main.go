package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sirashofficial/learnership-management-sub004/internal/cli"
	"github.com/sirashofficial/learnership-management-sub004/internal/cli/formatter"
	"github.com/sirashofficial/learnership-management-sub004/internal/config"
	"github.com/sirashofficial/learnership-management-sub004/internal/curriculum"
	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
	"github.com/sirashofficial/learnership-management-sub004/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	source, err := curriculum.NewSource(cfg.CurriculumFile)
	if err != nil {
		return fmt.Errorf("loading curriculum: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	groupRepo := repository.NewSQLiteGroupRepo(database)
	studentRepo := repository.NewSQLiteStudentRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	settings := service.Settings{
		Calendar:            cfg.Calendar(),
		WorkplaceBufferDays: cfg.WorkplaceBufferDays,
		Thresholds:          cfg.Thresholds,
		ReconcileWorkers:    cfg.ReconcileWorkers,
		Locks:               service.NewGroupLocks(),
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	app := &cli.App{
		Curriculum: source,
		Groups:     service.NewGroupService(groupRepo, studentRepo, assessmentRepo, settings),
		Rollout:    service.NewRolloutService(groupRepo, planRepo, source, uow, settings, observer),
		Sessions:   service.NewSessionService(sessionRepo, uow, settings, observer),
		Progress:   service.NewProgressService(studentRepo, planRepo, assessmentRepo, source, settings, observer),
		Templates:  service.NewTemplateService(templateRepo, uow, observer),
	}

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

func serveMetrics(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	logger.Debug("serving metrics", "addr", addr)
	return srv
}
