package postgres

import (
	"context"
	"testing"
	"time"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	record := &domain.IdempotencyRecord{
		TenantID:     uuid.New(),
		Key:          "idem-key-001",
		RequestHash:  "deadbeef",
		StatusCode:   201,
		ResponseBody: []byte(`{"id":"abc"}`),
		CreatedAt:    now,
		ExpiresAt:    now.Add(30 * 24 * time.Hour),
	}

	mock.ExpectExec("INSERT INTO idempotency_records").
		WithArgs(record.TenantID, record.Key, record.RequestHash, record.StatusCode, record.ResponseBody, record.CreatedAt, record.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), record)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_Create_DuplicateKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock)
	record := &domain.IdempotencyRecord{TenantID: uuid.New(), Key: "dupe", CreatedAt: time.Now().UTC(), ExpiresAt: time.Now().UTC()}

	mock.ExpectExec("INSERT INTO idempotency_records").
		WithArgs(record.TenantID, record.Key, record.RequestHash, record.StatusCode, record.ResponseBody, record.CreatedAt, record.ExpiresAt).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err = repo.Create(context.Background(), record)
	assert.ErrorIs(t, err, ErrDuplicateIdempotencyKey)
}

func TestIdempotencyRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock)
	tenantID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM idempotency_records WHERE tenant_id").
		WithArgs(tenantID, "idem-key-001").
		WillReturnRows(pgxmock.NewRows([]string{"tenant_id", "key", "request_hash", "status_code", "response_body", "created_at", "expires_at"}).
			AddRow(tenantID, "idem-key-001", "deadbeef", 201, []byte(`{"id":"abc"}`), now, now.Add(time.Hour)))

	result, err := repo.Get(context.Background(), tenantID, "idem-key-001")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "deadbeef", result.RequestHash)
	assert.Equal(t, 201, result.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock)
	tenantID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM idempotency_records WHERE tenant_id").
		WithArgs(tenantID, "nonexistent-key").
		WillReturnRows(pgxmock.NewRows([]string{"tenant_id", "key", "request_hash", "status_code", "response_body", "created_at", "expires_at"}))

	result, err := repo.Get(context.Background(), tenantID, "nonexistent-key")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
