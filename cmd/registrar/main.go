// Package main - точка входа для консольного приложения Campus Enrollment Hub.
//
// Система управления зачислениями: студенты записываются на курсы с учётом
// кредитного лимита, получают оценки и могут узнать свой GPA.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries)
// - Infrastructure: реализация репозиториев (memory/postgres), кеш, события
// - Interface: консольный REPL
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-hub/enrollment-hub/config"

	// Application layer
	"github.com/campus-hub/enrollment-hub/internal/application/command"
	"github.com/campus-hub/enrollment-hub/internal/application/query"

	// Domain layer
	"github.com/campus-hub/enrollment-hub/internal/domain/course"
	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"
	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/domain/student"

	// Infrastructure layer
	"github.com/campus-hub/enrollment-hub/internal/infrastructure/messaging"
	"github.com/campus-hub/enrollment-hub/internal/infrastructure/persistence/memory"
	"github.com/campus-hub/enrollment-hub/internal/infrastructure/persistence/postgres"
	"github.com/campus-hub/enrollment-hub/internal/infrastructure/persistence/redis"

	// Interface layer
	"github.com/campus-hub/enrollment-hub/internal/interface/console"

	// Packages
	"github.com/campus-hub/enrollment-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run собирает все зависимости и запускает REPL.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  logger.ParseLevel(cfg.App.LogLevel),
	}).With(logger.String("app", cfg.App.Name))

	log.Info("starting",
		logger.String("env", string(cfg.App.Environment)),
		logger.Bool("postgres", cfg.Database.Enabled()),
		logger.Bool("redis", cfg.Redis.Enabled()),
	)

	// ──────────────────────────────────────────────────────────────────────
	// Хранилище: in-memory по умолчанию, PostgreSQL при наличии DATABASE_URL
	// ──────────────────────────────────────────────────────────────────────

	var (
		studentRepo    student.Repository
		courseRepo     course.Repository
		enrollmentRepo enrollment.Repository
	)

	// Закрываем инфраструктуру в конце с дедлайном ShutdownTimeout.
	var closers []func()

	if cfg.Database.Enabled() {
		conn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		conn.WithQueryTimeout(cfg.Database.QueryTimeout)
		closers = append(closers, conn.Close)

		if err := postgres.NewMigrator(conn).Migrate(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		studentRepo = postgres.NewStudentRepository(conn)
		courseRepo = postgres.NewCourseRepository(conn)
		enrollmentRepo = postgres.NewEnrollmentRepository(conn)
		log.Info("postgres storage ready")
	} else {
		studentRepo = memory.NewStudentRepository()
		courseRepo = memory.NewCourseRepository()
		enrollmentRepo = memory.NewEnrollmentRepository()
		log.Info("in-memory storage ready")
	}

	// ──────────────────────────────────────────────────────────────────────
	// Кеш GPA: опционально, при наличии REDIS_URL
	// ──────────────────────────────────────────────────────────────────────

	var gpaCache enrollment.GPACache
	if cfg.Redis.Enabled() {
		cache, err := redis.NewCacheFromURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		closers = append(closers, func() { _ = cache.Close() })

		if err := cache.Ping(ctx); err != nil {
			// Кеш не критичен: работаем без него
			log.Warn("redis unavailable, gpa cache disabled", logger.Err(err))
		} else {
			gpaCache = redis.NewGPACache(cache)
			log.Info("redis gpa cache ready")
		}
	}

	// ──────────────────────────────────────────────────────────────────────
	// Шина событий
	// ──────────────────────────────────────────────────────────────────────

	eventBus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{
		Logger:        slog.New(slog.NewJSONHandler(os.Stderr, nil)),
		EnableMetrics: true,
	})
	closers = append(closers, func() { _ = eventBus.Close() })

	// Наблюдатель жизненного цикла зачислений
	if err := eventBus.SubscribeAll(func(event shared.Event) error {
		payload, _ := event.Payload()
		log.Debug("domain event",
			logger.String("event_type", string(event.EventType())),
			logger.String("payload", string(payload)),
		)
		return nil
	}); err != nil {
		return fmt.Errorf("subscribe event observer: %w", err)
	}

	// ──────────────────────────────────────────────────────────────────────
	// Use cases
	// ──────────────────────────────────────────────────────────────────────

	enrollHandler := command.NewEnrollStudentHandler(studentRepo, courseRepo, enrollmentRepo, gpaCache, eventBus)
	gradeHandler := command.NewAssignGradeHandler(studentRepo, enrollmentRepo, gpaCache, eventBus)
	registerHandler := command.NewRegisterStudentHandler(studentRepo, eventBus)
	addCourseHandler := command.NewAddCourseHandler(courseRepo, eventBus)
	gpaHandler := query.NewGetStudentGPAHandler(studentRepo, courseRepo, enrollmentRepo, gpaCache).
		WithCacheTTL(cfg.Enrollment.GPACacheTTL)
	transcriptHandler := query.NewGetTranscriptHandler(studentRepo, courseRepo, enrollmentRepo)

	controller := console.NewController(
		enrollHandler,
		gradeHandler,
		registerHandler,
		addCourseHandler,
		gpaHandler,
		transcriptHandler,
		log,
	)

	// ──────────────────────────────────────────────────────────────────────
	// REPL + graceful shutdown
	// ──────────────────────────────────────────────────────────────────────

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repl := console.NewREPL(controller, os.Stdin, os.Stdout, log).
		WithDefaultMaxCredits(cfg.Enrollment.DefaultMaxCredits)
	if err := repl.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("repl: %w", err)
	}

	// Останавливаем инфраструктуру в обратном порядке; зависшее
	// соединение не должно держать процесс дольше дедлайна.
	done := make(chan struct{})
	go func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		close(done)
	}()

	select {
	case <-done:
		log.Info("shutdown complete")
	case <-time.After(cfg.App.ShutdownTimeout):
		log.Warn("shutdown deadline exceeded",
			logger.Duration("timeout", cfg.App.ShutdownTimeout))
	}

	return nil
}
