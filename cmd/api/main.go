package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-api/internal/db"
	"github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/jobs"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/notify"
	"github.com/BruksfildServices01/agenda-api/internal/routes"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

const shutdownTimeout = 15 * time.Second

func main() {
	log := logger.NewLogger("agenda-api")

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("database unavailable", "err", err)
		os.Exit(1)
	}

	rdb, err := dbpkg.NewRedis(ctx, cfg)
	if err != nil {
		// redis only backs pub/sub and rate limiting
		log.Warn("redis unavailable, continuing without it", "err", err)
		rdb = nil
	}

	// ======================================================
	// NOTIFICATIONS
	// ======================================================
	sinks := []notify.Sink{notify.NewStoreSink(repository.NewNotificationGormRepository(db))}
	if rdb != nil {
		sinks = append(sinks, notify.NewRedisSink(rdb, cfg.NotificationChannel))
	}
	dispatcher := notify.NewDispatcher(log, cfg.NotificationQueueSize, sinks...)

	settings := ucAppointment.Settings{
		Location:           timezone.Location(cfg.Timezone),
		Granularity:        cfg.SlotGranularity(),
		CancellationCutoff: cfg.CancellationCutoff,
	}

	// ======================================================
	// CRON
	// ======================================================
	scheduler := jobs.NewScheduler(settings.Location, log)
	reminders := ucAppointment.NewSendReminders(
		repository.NewAppointmentGormRepository(db),
		dispatcher,
		settings,
		log,
	)
	if err := scheduler.AddReminders(cfg.ReminderCron, reminders); err != nil {
		log.Error("invalid REMINDER_CRON", "expr", cfg.ReminderCron, "err", err)
		os.Exit(1)
	}
	scheduler.Start()

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Redis:    rdb,
		Config:   cfg,
		Log:      log,
		Notifier: dispatcher,
		Settings: settings,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "err", err)
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Error("cron shutdown", "err", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("notification dispatcher shutdown", "err", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
