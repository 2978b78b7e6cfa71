package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/config"
	"github.com/GlebRadaev/coursemarket/internal/events"
	"github.com/GlebRadaev/coursemarket/internal/handlers"
	"github.com/GlebRadaev/coursemarket/internal/idempotency"
	"github.com/GlebRadaev/coursemarket/internal/jobs"
	"github.com/GlebRadaev/coursemarket/internal/pg"
	"github.com/GlebRadaev/coursemarket/internal/provider"
	"github.com/GlebRadaev/coursemarket/internal/repo"
	"github.com/GlebRadaev/coursemarket/internal/service"
	"github.com/GlebRadaev/coursemarket/internal/service/signatureservice"
	"github.com/GlebRadaev/coursemarket/pkg/clients"
	"github.com/GlebRadaev/coursemarket/pkg/logger"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

const workers = 8

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	jobs      *jobs.Runner
	pool      *pgxpool.Pool
	redis     *redis.Client
	publisher events.Publisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

// Bootstrap builds everything but the HTTP server and the scheduler. It is
// shared by the server and the one-shot jobs command.
func (a *Application) Bootstrap(ctx context.Context, cfg *config.Config) error {
	err := logger.InitLogger(cfg.LogLvl, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	limits, err := schedule.ParseLimits(cfg.PaymentScheduleLimits)
	if err != nil {
		return fmt.Errorf("invalid payment schedule limits: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool

	a.publisher = newPublisher(cfg)
	a.cfg = cfg
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	a.srv = service.New(a.repo, service.External{
		Provider:       provider.New(cfg.PaymentProviderAddress, firstSecret(cfg.PaymentWebhookSecrets), clients.NewHTTPClient()),
		Publisher:      a.publisher,
		Backend:        signatureservice.DummyBackend{},
		JWTSecret:      cfg.JWTSecret,
		Limits:         limits,
		WithdrawalDays: cfg.WithdrawalDays,
	})
	a.jobs = jobs.New(jobs.Settings{
		Interval:                   cfg.JobsInterval,
		StuckOrderDelay:            cfg.StuckOrderDelay,
		StuckCertificateOrderDelay: cfg.StuckCertificateOrderDelay,
		CardRetention:              cfg.CardRetention,
		ReminderDays:               cfg.ReminderDays,
	}, a.srv.PaymentService, a.repo.OrderRepo, a.repo.BatchOrderRepo, a.repo.CreditCardRepo, jobs.NewWorkerPool(workers))
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.Bootstrap(ctx, config.New()); err != nil {
		return err
	}

	a.api = handlers.New(a.srv, handlers.Webhooks{
		PaymentSecrets:   a.cfg.PaymentWebhookSecrets,
		SignatureSecrets: a.cfg.SignatureWebhookSecrets,
		Deduper:          a.newDeduper(ctx),
	})

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startJobs(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// Jobs returns the job runner built by Bootstrap.
func (a *Application) Jobs() *jobs.Runner {
	return a.jobs
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		zap.L().Info("no kafka brokers configured, events are only logged")
		return events.NewLogPublisher()
	}
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}

func (a *Application) newDeduper(ctx context.Context) idempotency.Deduper {
	if a.cfg.RedisAddr == "" {
		zap.L().Info("no redis configured, webhook deduplication disabled")
		return idempotency.NopDeduper{}
	}
	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, webhook deduplication disabled", zap.Error(err))
		client.Close()
		return idempotency.NopDeduper{}
	}
	a.redis = client
	return idempotency.NewRedisDeduper(client)
}

// firstSecret signs outgoing provider requests with the current secret.
func firstSecret(secrets []string) string {
	if len(secrets) == 0 {
		return ""
	}
	return secrets[0]
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startJobs(ctx context.Context) {
	a.jobs.Start(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.jobs.Close()
	}()
}

// Close releases the connections opened by Bootstrap.
func (a *Application) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			zap.L().Error("failed to close event publisher", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Error("failed to close redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.Close()

	return appErr
}
