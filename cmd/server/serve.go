package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "policydesk/internal/adapters/http"
	"policydesk/internal/adapters/memory"
	pg "policydesk/internal/adapters/postgres"
	"policydesk/internal/config"
	"policydesk/internal/domain"
	"policydesk/internal/ports"
	"policydesk/internal/services/applications"
	"policydesk/internal/services/claims"
	"policydesk/internal/services/payments"
	"policydesk/internal/services/policies"
	"policydesk/internal/services/quotes"
	"policydesk/internal/workers/paymentrunner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and run payment notice workers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		if err := cfg.RequireSecret(); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

func init() {
	serveCmd.Flags().String("store", "", "storage backend: postgres or memory")
	serveCmd.Flags().String("listen", "", "listen address, e.g. :8080")
}

// storage is the set of ports one backend provides.
type storage interface {
	ports.PolicyRepository
	ports.ApplicationRepository
	ports.ClaimRepository
	ports.HoldingRepository
	ports.PaymentRepository
	ports.InstructionStore
	ports.JobRepository
}

// demoCatalog seeds the in-memory store with the same products the seed
// migration installs.
func demoCatalog() []domain.Policy {
	now := time.Now().UTC()
	return []domain.Policy{
		{Name: "Term Life 20", Category: "life", Description: "Level term life cover for 20 years.", MinCoverage: 100000, MaxCoverage: 5000000, CreatedAt: now},
		{Name: "Whole Life", Category: "life", Description: "Lifetime cover with a guaranteed payout.", MinCoverage: 50000, MaxCoverage: 2000000, CreatedAt: now},
		{Name: "Critical Illness", Category: "health", Description: "Lump sum on diagnosis of a listed condition.", MinCoverage: 25000, MaxCoverage: 1000000, CreatedAt: now},
		{Name: "Income Protection", Category: "income", Description: "Monthly benefit while unable to work.", MinCoverage: 10000, MaxCoverage: 500000, CreatedAt: now},
	}
}

func openStorage(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (storage, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return memory.New(demoCatalog()...), func() {}, nil
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db connect: %w", err)
	}
	n, err := db.Migrate(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	log.WithField("applied", n).Info("migrations up to date")
	return db, db.Close, nil
}

func serve(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	store, closeStore, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	processor := paymentrunner.Processor{Payments: store, Sender: paymentrunner.LogSender{Log: log}}
	svc := httpadapter.Services{
		Quotes:       quotes.New(),
		Policies:     policies.New(store),
		Applications: applications.New(store, store, store, log),
		Claims:       claims.New(store, store, store, log),
		Payments:     payments.New(store, store, processor),
	}
	var limiter *httpadapter.QuoteLimiter
	if cfg.Quotes.RatePerSecond > 0 {
		limiter = httpadapter.NewQuoteLimiter(cfg.Quotes.RatePerSecond, cfg.Quotes.Burst)
	}
	auth := httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, log)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpadapter.New(svc, auth, limiter, log).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	workersDone := paymentrunner.Run(ctx, store, processor, cfg.Workers.PaymentNotices, cfg.Workers.PollInterval, log)
	if cfg.Workers.PaymentNotices > 0 {
		log.WithField("workers", cfg.Workers.PaymentNotices).Info("payment notice workers started")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.WithFields(logrus.Fields{"addr": cfg.ListenAddr, "env": cfg.Env, "store": cfg.Store}).Info("listening")

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	select {
	case <-workersDone:
	case <-shutdownCtx.Done():
		log.Warn("payment notice workers still busy at exit")
	}
	return err
}
