package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/models"
)

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{"postgres://u:p@localhost:5432/db", true},
		{"postgresql://localhost/db?sslmode=disable", true},
		{"  POSTGRES://localhost/db", true},
		{"ledger.db", false},
		{"file:ledger.db?cache=shared", false},
		{":memory:", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPostgresDSN(tt.dsn), tt.dsn)
	}
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: " "}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// second call keeps the existing file
	require.NoError(t, createLocalDBFileIfNotExists(path))

	// URI and in-memory DSNs are not touched
	require.NoError(t, createLocalDBFileIfNotExists(":memory:"))
	_, err = os.Stat(":memory:")
	assert.True(t, os.IsNotExist(err))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), Conflict},
		{"wrapped unique violation", errors.Join(errors.New("ctx"), pgError(pgerrcode.UniqueViolation)), Conflict},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"not null violation", pgError(pgerrcode.NotNullViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Conflict, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.Equal(t, Conflict, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "conflict", Conflict.String())
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}

// TestSQLiteLedger runs the repository against a real SQLite file with the
// embedded migrations applied.
func TestSQLiteLedger(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	db, err := NewConnect(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "ledger.db")}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	repos := NewRepositories(db, log)
	a := models.PaymentAttempt{
		IdempotencyKey:    "k1",
		LocationID:        "L1",
		Amount:            1200,
		Currency:          models.CurrencyUSD,
		SourceFingerprint: "fp",
	}

	reserved, err := repos.PaymentAttempts.Reserve(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptPending, reserved.Status)

	_, err = repos.PaymentAttempts.Reserve(ctx, a)
	require.ErrorIs(t, err, ErrAttemptAlreadyExists)

	done, err := repos.PaymentAttempts.Complete(ctx, "k1", Succeeded("P1"))
	require.NoError(t, err)
	assert.Equal(t, models.AttemptSucceeded, done.Status)
	assert.Equal(t, "P1", done.PaymentID)
	assert.Equal(t, int64(1200), done.Amount)

	again, err := repos.PaymentAttempts.Complete(ctx, "k1", Failed("X"))
	require.ErrorIs(t, err, ErrAttemptNotPending)
	assert.Equal(t, "P1", again.PaymentID)

	_, err = repos.PaymentAttempts.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrAttemptNotFound)

	list, err := repos.PaymentAttempts.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "k1", list[0].IdempotencyKey)

	a.IdempotencyKey = "k2"
	_, err = repos.PaymentAttempts.Reserve(ctx, a)
	require.NoError(t, err)

	stale, err := repos.PaymentAttempts.ListPending(ctx, time.Now().Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "k2", stale[0].IdempotencyKey)

	stale, err = repos.PaymentAttempts.ListPending(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, stale)
}
