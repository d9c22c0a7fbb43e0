package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"wealthwise/config"
	"wealthwise/internal/database"
	"wealthwise/internal/router"
	"wealthwise/pkg/mailer"
)

func main() {
	cfg := config.Load()
	if cfg.Server.Env == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	if cfg.Server.Env == "development" {
		database.SeedDemoClient(db)
	}

	var mail mailer.Mailer
	if cfg.Mail.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(&cfg.Mail)
	} else {
		log.Warn("SMTP_HOST not set, login links will only be logged")
		mail = &mailer.StubMailer{}
	}

	engine := router.Setup(cfg, db, mail)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.WithField("port", cfg.Server.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen")
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server shutdown")
	}
	log.Info("server stopped")
}
