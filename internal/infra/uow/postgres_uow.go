package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"casual-leasing/internal/infra/repository"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/config"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTxBegin  = errs.New("begin transaction")
	ErrTxCommit = errs.New("commit transaction")
)

// PostgresUoW runs write use cases inside a read-committed transaction.
type PostgresUoW struct {
	pool     *pgxpool.Pool
	q        *sqlc.Queries
	logger   *slog.Logger
	attempts int
	delay    time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:     pool,
		q:        q,
		logger:   logger,
		attempts: max(cfg.DB.TxAttempts, 1),
		delay:    cfg.DB.TxRetryDelay,
	}
}

// Within reruns fn after serialization failures and deadlocks, so fn must
// not have side effects outside tx.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 1; attempt <= u.attempts; attempt++ {
		err = u.runOnce(ctx, fn)
		if err == nil || !retryable(err) || attempt == u.attempts {
			break
		}

		wait := backoff(u.delay, attempt)
		u.logger.WarnContext(ctx, "transaction conflict, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return err
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, ErrTxBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.WarnContext(ctx, "rollback failed", slog.Any("error", rbErr))
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: tx, q: u.q}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTxCommit)
	}
	return nil
}

// retryable reports serialization_failure and deadlock_detected.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// backoff doubles base for every attempt already made.
func backoff(base time.Duration, attempt int) time.Duration {
	return base << (attempt - 1)
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	bookings      shared.BookingRepository
	seasonalRates shared.SeasonalRateRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.q)
	}
	return t.bookings
}

func (t *pgTx) SeasonalRates() shared.SeasonalRateRepository {
	if t.seasonalRates == nil {
		t.seasonalRates = repository.NewSeasonalRateRepository(t.q)
	}
	return t.seasonalRates
}
