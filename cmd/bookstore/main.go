package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/MikeRez0/ypbookstore/internal/adapter/auth"
	"github.com/MikeRez0/ypbookstore/internal/adapter/config"
	"github.com/MikeRez0/ypbookstore/internal/adapter/event"
	"github.com/MikeRez0/ypbookstore/internal/adapter/gateway/vnpay"
	"github.com/MikeRez0/ypbookstore/internal/adapter/handler/http"
	"github.com/MikeRez0/ypbookstore/internal/adapter/logger"
	"github.com/MikeRez0/ypbookstore/internal/adapter/metrics"
	"github.com/MikeRez0/ypbookstore/internal/adapter/storage"
	"github.com/MikeRez0/ypbookstore/internal/adapter/storage/repository"
	"github.com/MikeRez0/ypbookstore/internal/core/port"
	"github.com/MikeRez0/ypbookstore/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(conf, log); err != nil {
		log.Error("bookstore stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := conf.VNPay.Validate()
	if err != nil {
		return fmt.Errorf("vnpay config: %w", err)
	}

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	err = db.RunMigrations()
	if err != nil {
		return fmt.Errorf("database migration: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		return fmt.Errorf("order repo: %w", err)
	}

	gateway, err := vnpay.NewClient(conf.VNPay, log.Named("VNPay"))
	if err != nil {
		return fmt.Errorf("vnpay client: %w", err)
	}

	var events port.PaymentEventPublisher = event.NopPublisher{Logger: log.Named("Events")}
	if conf.Events.NatsURL != "" {
		notifier, err := event.NewNotifier(conf.Events, log.Named("Events"))
		if err != nil {
			return fmt.Errorf("payment notifier: %w", err)
		}
		defer func() {
			if err := notifier.Close(); err != nil {
				log.Error("notifier close error", zap.Error(err))
			}
		}()
		notifier.Start(ctx, conf.Events.Workers)
		events = notifier
	}

	m := metrics.New()

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}

	svc, err := service.NewService(repo, gateway, events, m, log.Named("Service"))
	if err != nil {
		return fmt.Errorf("order service: %w", err)
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		return fmt.Errorf("order handler: %w", err)
	}
	checkoutHandler, err := http.NewCheckoutHandler(svc, conf.Client.Host, log.Named("Checkout handler"))
	if err != nil {
		return fmt.Errorf("checkout handler: %w", err)
	}

	r, err := http.NewRouter(tokenService, orderHandler, checkoutHandler, m.Handler(), log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	log.Info("starting server", zap.String("address", conf.HTTP.HostString))
	return r.Serve(conf.HTTP.HostString)
}
