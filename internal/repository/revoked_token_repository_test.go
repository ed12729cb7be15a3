package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-web-server/config"
	"scheduling-web-server/internal/repository"
)

func newMockDB(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mockSQL, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &config.Database{DB: sqlx.NewDb(db, "sqlmock")}, mockSQL
}

const insertRevokedQuery = `INSERT INTO revoked_tokens (token, revoked_at) VALUES ($1, now())
				ON CONFLICT (token) DO NOTHING`

// Первая вставка токена возвращает true
func TestRecordRevoked_FirstInsert(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewRevokedTokenRepository(db)

	mockSQL.ExpectExec(regexp.QuoteMeta(insertRevokedQuery)).
		WithArgs("token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.RecordRevoked(context.Background(), "token-1")

	assert.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

// Повторная вставка того же токена — не ошибка, но и не вставка
func TestRecordRevoked_Idempotent(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewRevokedTokenRepository(db)

	mockSQL.ExpectExec(regexp.QuoteMeta(insertRevokedQuery)).
		WithArgs("token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mockSQL.ExpectExec(regexp.QuoteMeta(insertRevokedQuery)).
		WithArgs("token-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.RecordRevoked(context.Background(), "token-1")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.RecordRevoked(context.Background(), "token-1")
	assert.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

// Ошибка БД не маскируется под "не вставлено"
func TestRecordRevoked_DBError(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewRevokedTokenRepository(db)

	mockSQL.ExpectExec(regexp.QuoteMeta(insertRevokedQuery)).
		WithArgs("token-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.RecordRevoked(context.Background(), "token-1")
	assert.Error(t, err)
}

func TestIsRevoked(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewRevokedTokenRepository(db)

	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token = $1)`)

	mockSQL.ExpectQuery(query).
		WithArgs("spent").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mockSQL.ExpectQuery(query).
		WithArgs("fresh").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	revoked, err := repo.IsRevoked(context.Background(), "spent")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(context.Background(), "fresh")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

// Чистка передаёт границу "сейчас минус возраст" и возвращает число удалённых
func TestPruneOlderThan(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewRevokedTokenRepository(db)

	before := time.Now().UTC().Add(-7 * 24 * time.Hour)

	mockSQL.ExpectExec(regexp.QuoteMeta(`DELETE FROM revoked_tokens WHERE revoked_at < $1`)).
		WithArgs(cutoffAround(before)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.PruneOlderThan(context.Background(), 7*24*time.Hour)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestPruneOlderThan_DBError(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewRevokedTokenRepository(db)

	mockSQL.ExpectExec(regexp.QuoteMeta(`DELETE FROM revoked_tokens WHERE revoked_at < $1`)).
		WillReturnError(errors.New("deadlock"))

	_, err := repo.PruneOlderThan(context.Background(), 7*24*time.Hour)
	assert.Error(t, err)
}

// cutoffAround принимает момент в пределах пары секунд от ожидаемого:
// граница вычисляется внутри репозитория через time.Now()
func cutoffAround(expected time.Time) sqlmock.Argument {
	return cutoffMatcher{expected: expected}
}

type cutoffMatcher struct {
	expected time.Time
}

func (m cutoffMatcher) Match(v driver.Value) bool {
	actual, ok := v.(time.Time)
	if !ok {
		return false
	}
	diff := actual.Sub(m.expected)
	if diff < 0 {
		diff = -diff
	}
	return diff < 2*time.Second
}
