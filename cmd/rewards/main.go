package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rewards_service/internal/app"
	"rewards_service/internal/config"
	"rewards_service/internal/pkg/draw"
	"rewards_service/internal/pkg/logger"
	"rewards_service/internal/service"
	"rewards_service/internal/storage"

	"github.com/robfig/cron/v3"
)

func main() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	selector := draw.NewSelector(rand.NewSource(time.Now().UnixNano()))

	storage, err := storage.NewPostgreSQL(config.DatabaseURI, selector, l)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Close()

	app := app.NewApp(storage, config.BonusCardCost, l)
	service := service.NewService(app, config.ServerRunAddress, l)

	// The monthly reward job is normally triggered by an external scheduler
	// hitting its endpoint; REWARDS_CRON enables an in-process schedule instead.
	if config.RewardsCron != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(config.RewardsCron, func() {
			summary, err := app.ProcessMonthlyRewards(context.Background())
			if err != nil {
				l.Sugar().Errorf("Monthly rewards job failed: %s", err)
				return
			}
			l.Sugar().Infof("Monthly rewards job finished: month %s, %d coins awarded", summary.RewardMonth, summary.TotalAwarded)
		}); err != nil {
			log.Fatal("Failed to schedule monthly rewards job:", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	const readHeaderTimeout = 5 * time.Second
	server := &http.Server{Addr: config.ServerRunAddress, Handler: service.NewRouter(), ReadHeaderTimeout: readHeaderTimeout}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		const shutdownTimeout = 30 * time.Second
		shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownTimeout)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		defer storage.Close()
		log.Fatal(err)
	}

	<-serverCtx.Done()
}
