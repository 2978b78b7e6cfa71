// Package jobs holds the periodic maintenance of the marketplace: installment
// debits and reminders, unused card cleanup and the stuck order reaper.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/coursemarket/internal/domain"
)

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=jobs

const (
	DebitInstallments      = "debit-installments"
	InstallmentReminders   = "installment-reminders"
	DeleteUnusedCreditCard = "delete-unused-credit-cards"
	DeleteStuckOrders      = "delete-stuck-orders"
)

var ErrUnknownJob = errors.New("unknown job")

type Payments interface {
	PayableOrders(ctx context.Context) ([]domain.Order, error)
	DebitOrder(ctx context.Context, order *domain.Order, on time.Time) (int, error)
	Remind(ctx context.Context, order *domain.Order, target time.Time) (bool, error)
}

type OrderReaper interface {
	DeleteStuck(ctx context.Context, states []domain.OrderState, before time.Time) (int64, error)
	DeleteStuckCertificateOrders(ctx context.Context, states []domain.OrderState, before time.Time) (int64, error)
}

type BatchOrderReaper interface {
	DeleteStuck(ctx context.Context, states []domain.BatchOrderState, before time.Time) (int64, error)
}

type CardCleaner interface {
	DeleteUnused(ctx context.Context, before time.Time) (int64, error)
}

type Settings struct {
	Interval                   time.Duration
	StuckOrderDelay            time.Duration
	StuckCertificateOrderDelay time.Duration
	CardRetention              time.Duration
	ReminderDays               int
}

// ReapReport counts the rows removed by one reaper run.
type ReapReport struct {
	Orders            int64 `json:"orders"`
	CertificateOrders int64 `json:"certificate_orders"`
	BatchOrders       int64 `json:"batch_orders"`
}

type Runner struct {
	payments   Payments
	orders     OrderReaper
	batches    BatchOrderReaper
	cards      CardCleaner
	settings   Settings
	workerPool WorkerPoolI
	processing sync.Map
	now        func() time.Time
	jobs       map[string]func(ctx context.Context) error
	done       chan struct{}
}

func New(settings Settings, payments Payments, orders OrderReaper, batches BatchOrderReaper, cards CardCleaner, workerPool WorkerPoolI) *Runner {
	r := &Runner{
		payments:   payments,
		orders:     orders,
		batches:    batches,
		cards:      cards,
		settings:   settings,
		workerPool: workerPool,
		now:        time.Now,
	}
	r.jobs = map[string]func(ctx context.Context) error{
		DebitInstallments:      r.debitInstallments,
		InstallmentReminders:   r.sendReminders,
		DeleteUnusedCreditCard: r.deleteUnusedCards,
		DeleteStuckOrders: func(ctx context.Context) error {
			_, err := r.Reap(ctx)
			return err
		},
	}
	return r
}

func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.jobs))
	for name := range r.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Runner) Run(ctx context.Context, name string) error {
	job, ok := r.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	started := r.now()
	err := job(ctx)
	if err != nil {
		zap.L().Error("job failed", zap.String("job", name), zap.Error(err))
		return err
	}
	zap.L().Info("job done", zap.String("job", name), zap.Duration("took", r.now().Sub(started)))
	return nil
}

// RunAll runs every job concurrently. A failing job does not stop the others,
// the first failure is returned once all of them are done.
func (r *Runner) RunAll(ctx context.Context) error {
	var g errgroup.Group
	for _, name := range r.Names() {
		g.Go(func() error {
			if err := r.Run(ctx, name); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) Start(ctx context.Context) {
	zap.L().Info("jobs scheduler started", zap.Duration("interval", r.settings.Interval))
	r.done = make(chan struct{})
	go r.loop(ctx)
}

func (r *Runner) loop(ctx context.Context) {
	ticker := time.NewTicker(r.settings.Interval)
	defer ticker.Stop()
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping jobs scheduler")
			return
		case <-ticker.C:
			if err := r.RunAll(ctx); err != nil {
				zap.L().Warn("scheduled jobs run incomplete", zap.Error(err))
			}
		}
	}
}

// Close waits for the scheduler to stop, then for the queued tasks.
func (r *Runner) Close() {
	if r.done != nil {
		<-r.done
	}
	r.workerPool.Close()
}

// forEachOrder hands every order to the worker pool and waits for all of
// them. An order still handled by a previous run is skipped.
func (r *Runner) forEachOrder(ctx context.Context, orders []domain.Order, handle func(order *domain.Order) error) error {
	var g errgroup.Group
	var wg sync.WaitGroup
	for i := range orders {
		order := &orders[i]
		if _, loaded := r.processing.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}
		wg.Add(1)
		release := func(id uuid.UUID) {
			r.processing.Delete(id)
			wg.Done()
		}

		g.Go(func() error {
			err := r.workerPool.AddTask(ctx, func() error {
				defer release(order.ID)
				return handle(order)
			})
			if err != nil {
				release(order.ID)
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	wg.Wait()
	return err
}

func (r *Runner) debitInstallments(ctx context.Context) error {
	orders, err := r.payments.PayableOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch payable orders: %w", err)
	}
	today := r.now()
	var requested atomic.Int64
	err = r.forEachOrder(ctx, orders, func(order *domain.Order) error {
		n, err := r.payments.DebitOrder(ctx, order, today)
		requested.Add(int64(n))
		if err != nil {
			return fmt.Errorf("debit order %s: %w", order.ID, err)
		}
		return nil
	})
	zap.L().Info("installment debits requested", zap.Int("orders", len(orders)), zap.Int64("payments", requested.Load()))
	return err
}

func (r *Runner) sendReminders(ctx context.Context) error {
	orders, err := r.payments.PayableOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch payable orders: %w", err)
	}
	target := r.now().AddDate(0, 0, r.settings.ReminderDays)
	var sent atomic.Int64
	err = r.forEachOrder(ctx, orders, func(order *domain.Order) error {
		ok, err := r.payments.Remind(ctx, order, target)
		if err != nil {
			return fmt.Errorf("remind order %s: %w", order.ID, err)
		}
		if ok {
			sent.Add(1)
		}
		return nil
	})
	zap.L().Info("installment reminders sent", zap.Int64("reminders", sent.Load()))
	return err
}

func (r *Runner) deleteUnusedCards(ctx context.Context) error {
	deleted, err := r.cards.DeleteUnused(ctx, r.now().Add(-r.settings.CardRetention))
	if err != nil {
		return err
	}
	zap.L().Info("unused credit cards deleted", zap.Int64("cards", deleted))
	return nil
}

// Reap deletes the orders and batch orders abandoned while waiting for their
// owner.
func (r *Runner) Reap(ctx context.Context) (ReapReport, error) {
	var report ReapReport
	now := r.now()

	var err error
	report.Orders, err = r.orders.DeleteStuck(ctx, domain.StuckOrderStates, now.Add(-r.settings.StuckOrderDelay))
	if err != nil {
		return report, fmt.Errorf("delete stuck orders: %w", err)
	}
	report.CertificateOrders, err = r.orders.DeleteStuckCertificateOrders(ctx, domain.StuckCertificateOrderStates, now.Add(-r.settings.StuckCertificateOrderDelay))
	if err != nil {
		return report, fmt.Errorf("delete stuck certificate orders: %w", err)
	}
	report.BatchOrders, err = r.batches.DeleteStuck(ctx, domain.StuckBatchOrderStates, now.Add(-r.settings.StuckOrderDelay))
	if err != nil {
		return report, fmt.Errorf("delete stuck batch orders: %w", err)
	}

	zap.L().Info("stuck orders deleted",
		zap.Int64("orders", report.Orders),
		zap.Int64("certificate_orders", report.CertificateOrders),
		zap.Int64("batch_orders", report.BatchOrders))
	return report, nil
}
