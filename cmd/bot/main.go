package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dwikikusuma/shopbot/internal/api"
	"github.com/dwikikusuma/shopbot/internal/bot"
	cartapp "github.com/dwikikusuma/shopbot/internal/cart/app"
	cartmem "github.com/dwikikusuma/shopbot/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/shopbot/internal/catalog/app"
	catalogfile "github.com/dwikikusuma/shopbot/internal/catalog/infra/file"
	checkoutapp "github.com/dwikikusuma/shopbot/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/shopbot/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/shopbot/internal/ingest"
	orderapp "github.com/dwikikusuma/shopbot/internal/order/app"
	orderpg "github.com/dwikikusuma/shopbot/internal/order/infra/postgres"
	"github.com/dwikikusuma/shopbot/internal/telegram"
	"github.com/dwikikusuma/shopbot/pkg/config"
	"github.com/dwikikusuma/shopbot/pkg/logger"
	"github.com/dwikikusuma/shopbot/pkg/postgres"
	"github.com/dwikikusuma/shopbot/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "bot", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogRepo, err := catalogfile.Load(cfg.CatalogPath, cfg.Currency)
	if err != nil {
		log.Error("load catalog failed", slog.Any("err", err), slog.String("path", cfg.CatalogPath))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(), catalogSvc)

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, catalogReader, cfg.Currency, cfg.DeliveryFee, 10)

	// Orders. The storage handle is required by configuration but the bot
	// keeps serving when the database is unreachable: only order
	// recording degrades, never the conversation.
	var orderSvc *orderapp.Service
	if db, err := postgres.Open(cfg.DatabaseURL); err != nil {
		log.Warn("db open failed, orders will not be recorded", slog.Any("err", err))
	} else {
		defer db.Close()
		orderSvc = orderapp.NewService(orderpg.NewOrderRepo(db))
	}

	// Dispatch
	client := telegram.NewClient(cfg.BotToken)
	router := bot.NewRouter()
	bot.NewHandlers(catalogSvc, cartSvc, checkoutSvc, orderSvc, log).Register(router)
	dispatcher := bot.NewDispatcher(router, telegram.NewSender(client), log, cfg.IsAllowed)
	updates := ingest.NewUpdateDispatcher(dispatcher, log)

	// HTTP surface: liveness always, webhook endpoint only in webhook mode
	var pushed api.UpdateHandler
	if cfg.Mode == config.ModeWebhook {
		pushed = updates
	}
	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(pushed, cfg.WebhookSecret, log).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	var webhook *ingest.Webhook
	switch cfg.Mode {
	case config.ModeWebhook:
		webhook = ingest.NewWebhook(client, cfg.PublicURL, cfg.WebhookSecret, log)
		if err := webhook.Start(ctx); err != nil {
			log.Error("webhook registration failed", slog.Any("err", err))
			os.Exit(1)
		}
	default:
		poller := ingest.NewPoller(client, updates, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info("polling for updates")
			if err := poller.Run(ctx); err != nil {
				log.Error("poller error", slog.Any("err", err))
				cancel()
			}
		}()
	}

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if webhook != nil {
		webhook.Stop(shutdownCtx)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
