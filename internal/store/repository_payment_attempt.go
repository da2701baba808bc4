package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/models"
)

// Outcome is the final state recorded for a PENDING attempt.
type Outcome struct {
	Status    models.AttemptStatus
	PaymentID string
	ErrorCode string
	At        time.Time
}

// Succeeded is the outcome of an attempt Square returned a payment for.
func Succeeded(paymentID string) Outcome {
	return Outcome{Status: models.AttemptSucceeded, PaymentID: paymentID}
}

// Failed is the outcome of an attempt Square rejected with errorCode.
func Failed(errorCode string) Outcome {
	return Outcome{Status: models.AttemptFailed, ErrorCode: errorCode}
}

// paymentAttemptRepository implements [PaymentAttemptRepository] on top of
// PostgreSQL or SQLite. Queries are built with squirrel in the placeholder
// format of the connection's dialect.
type paymentAttemptRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewPaymentAttemptRepository(db *DB, logger *logger.Logger) PaymentAttemptRepository {
	logger.Debug().Msg("creating payment attempt repository")
	return &paymentAttemptRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// timestamp drops the monotonic clock and sub-microsecond precision, which
// neither database keeps.
func (r *paymentAttemptRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func (r *paymentAttemptRepository) Reserve(ctx context.Context, attempt models.PaymentAttempt) (models.PaymentAttempt, error) {
	log := logger.FromContext(ctx)

	now := r.timestamp()
	attempt.Status = models.AttemptPending
	attempt.PaymentID, attempt.ErrorCode = "", ""
	attempt.CreatedAt, attempt.UpdatedAt = now, now

	query, args, err := buildInsertAttemptQuery(r.db.builder(), attempt)
	if err != nil {
		log.Err(err).Str("func", "*paymentAttemptRepository.Reserve").Msg("error building insert query")
		return models.PaymentAttempt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.PaymentAttempt{}, r.statementError(ctx, "*paymentAttemptRepository.Reserve", attempt.IdempotencyKey, err)
	}

	log.Debug().
		Str("func", "*paymentAttemptRepository.Reserve").
		Str("idempotency_key", attempt.IdempotencyKey).
		Msg("payment attempt reserved")
	return attempt, nil
}

func (r *paymentAttemptRepository) Get(ctx context.Context, key string) (models.PaymentAttempt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAttemptQuery(r.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*paymentAttemptRepository.Get").Msg("error building select query")
		return models.PaymentAttempt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	attempt, err := scanAttempt(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PaymentAttempt{}, ErrAttemptNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*paymentAttemptRepository.Get").
			Str("idempotency_key", key).
			Msg("error querying payment attempt")
		return models.PaymentAttempt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return attempt, nil
}

// Complete records outcome for the PENDING attempt under key. When the
// attempt already has an outcome, the stored attempt is returned together
// with ErrAttemptNotPending.
func (r *paymentAttemptRepository) Complete(ctx context.Context, key string, outcome Outcome) (models.PaymentAttempt, error) {
	log := logger.FromContext(ctx)

	if outcome.At.IsZero() {
		outcome.At = r.timestamp()
	}

	query, args, err := buildCompleteAttemptQuery(r.db.builder(), key, outcome)
	if err != nil {
		log.Err(err).Str("func", "*paymentAttemptRepository.Complete").Msg("error building update query")
		return models.PaymentAttempt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.PaymentAttempt{}, r.statementError(ctx, "*paymentAttemptRepository.Complete", key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*paymentAttemptRepository.Complete").Msg("error reading affected rows")
		return models.PaymentAttempt{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	stored, err := r.Get(ctx, key)
	if err != nil {
		return models.PaymentAttempt{}, err
	}
	if affected == 0 {
		log.Warn().
			Str("func", "*paymentAttemptRepository.Complete").
			Str("idempotency_key", key).
			Str("status", string(stored.Status)).
			Msg("outcome already recorded")
		return stored, ErrAttemptNotPending
	}

	return stored, nil
}

func (r *paymentAttemptRepository) List(ctx context.Context, limit uint64) ([]models.PaymentAttempt, error) {
	query, args, err := buildListAttemptsQuery(r.db.builder(), limit)
	return r.queryAttempts(ctx, "*paymentAttemptRepository.List", query, args, err)
}

func (r *paymentAttemptRepository) ListPending(ctx context.Context, createdBefore time.Time, limit uint64) ([]models.PaymentAttempt, error) {
	query, args, err := buildListPendingAttemptsQuery(r.db.builder(), createdBefore.UTC(), limit)
	return r.queryAttempts(ctx, "*paymentAttemptRepository.ListPending", query, args, err)
}

// queryAttempts runs a built SELECT and scans every row. It never returns
// a nil slice without an error.
func (r *paymentAttemptRepository) queryAttempts(ctx context.Context, fn, query string, args []any, buildErr error) ([]models.PaymentAttempt, error) {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", fn).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	attempts := make([]models.PaymentAttempt, 0)
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning payment attempt")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		attempts = append(attempts, attempt)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating payment attempts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return attempts, nil
}

// statementError logs a failed INSERT or UPDATE and maps it through the
// connection's classifier.
func (r *paymentAttemptRepository) statementError(ctx context.Context, fn, key string, err error) error {
	class := r.db.classify(err)
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("idempotency_key", key).
		Str("pg_code", postgresError(err)).
		Stringer("class", class).
		Msg("error executing statement")

	switch class {
	case Conflict:
		return ErrAttemptAlreadyExists
	case Retryable:
		return fmt.Errorf("%w: %w", ErrTransient, err)
	default:
		return fmt.Errorf("%w: unexpected DB error: %w", ErrExecutingStatement, err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (models.PaymentAttempt, error) {
	var a models.PaymentAttempt
	err := row.Scan(
		&a.IdempotencyKey,
		&a.LocationID,
		&a.Amount,
		&a.Currency,
		&a.SourceFingerprint,
		&a.Status,
		&a.PaymentID,
		&a.ErrorCode,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
