package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"frame-notify-srv/pkg/kv"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	getQuery    = `SELECT value FROM kv_entries WHERE key = $1`
	upsertQuery = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	deleteQuery = `DELETE FROM kv_entries WHERE key = $1`
	scanQuery   = `SELECT key FROM kv_entries WHERE key LIKE $1 ESCAPE '\' AND key > $2 ORDER BY key LIMIT $3`
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return New(db), mock
}

func TestStoreGet(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("user:1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	_, err := s.Get(ctx, "user:1")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("user:2").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"token":"a"}`))
	got, err := s.Get(ctx, "user:2")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"a"}`, string(got))

	errDown := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("user:3").WillReturnError(errDown)
	_, err = s.Get(ctx, "user:3")
	assert.ErrorIs(t, err, errDown)
}

func TestStorePutOverwrites(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).WithArgs("user:1", `{"token":"a"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).WithArgs("user:1", `{"token":"b"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Put(context.Background(), "user:1", []byte(`{"token":"a"}`)))
	require.NoError(t, s.Put(context.Background(), "user:1", []byte(`{"token":"b"}`)))
}

func TestStoreDeleteMissing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).WithArgs("user:404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.Delete(context.Background(), "user:404"))
}

func TestStoreScanPaging(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(scanQuery)).WithArgs(`frame\_user:%`, "", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("frame_user:1").AddRow("frame_user:2"))
	mock.ExpectQuery(regexp.QuoteMeta(scanQuery)).WithArgs(`frame\_user:%`, "frame_user:2", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("frame_user:3"))

	keys, next, err := s.Scan(ctx, "frame_user:", "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"frame_user:1", "frame_user:2"}, keys)
	assert.Equal(t, "frame_user:2", next)

	keys, next, err = s.Scan(ctx, "frame_user:", next, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"frame_user:3"}, keys)
	assert.Equal(t, "", next)
}

func TestStoreScanDefaultCount(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(scanQuery)).WithArgs("user:%", "", int64(defaultScanCount)).
		WillReturnRows(sqlmock.NewRows([]string{"key"}))

	keys, next, err := s.Scan(context.Background(), "user:", "", 0)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, "", next)
}

func TestStoreMigrate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS kv_entries")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Migrate(context.Background()))
}
