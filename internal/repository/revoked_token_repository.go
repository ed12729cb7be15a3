package repository

import (
	"context"
	"time"

	"scheduling-web-server/config"
	"scheduling-web-server/internal/util"
)

// RevokedTokenRepository : append-only таблица отозванных refresh-токенов.
// Токен хранится дословно и является первичным ключом: именно уникальность
// ключа сериализует гонку двух конкурентных refresh с одним и тем же токеном.
type RevokedTokenRepository struct {
	*config.Database
}

func NewRevokedTokenRepository(database *config.Database) *RevokedTokenRepository {
	return &RevokedTokenRepository{database}
}

// RecordRevoked помечает токен отозванным.
// Возвращает true, если запись вставил именно этот вызов; повторная вставка
// того же токена — не ошибка (false, nil), это позволяет ретраить операцию
// и даёт сигнал "первый писатель победил" для конкурентного refresh.
func (r *RevokedTokenRepository) RecordRevoked(ctx context.Context, token string) (bool, error) {
	query := `INSERT INTO revoked_tokens (token, revoked_at) VALUES ($1, now())
				ON CONFLICT (token) DO NOTHING`

	result, err := r.DB.ExecContext(ctx, query, token)
	if err != nil {
		return false, util.LogError("[RevokedTokenRepo] ошибка вставки данных в БД", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[RevokedTokenRepo] не удалось проверить, вставлен ли токен", err)
	}

	return rowsAffected > 0, nil
}

// IsRevoked проверяет, был ли токен отозван
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	var revoked bool
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token = $1)`

	err := r.DB.QueryRowContext(ctx, query, token).Scan(&revoked)
	if err != nil {
		return false, util.LogError("[RevokedTokenRepo] ошибка проверки токена", err)
	}

	return revoked, nil
}

// PruneOlderThan удаляет записи старше заданного возраста.
// Работает построчно, без глобальной блокировки: конкурентные чтения и
// вставки других токенов не задерживаются. Возвращает число удалённых строк.
func (r *RevokedTokenRepository) PruneOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	query := `DELETE FROM revoked_tokens WHERE revoked_at < $1`

	result, err := r.DB.ExecContext(ctx, query, time.Now().UTC().Add(-age))
	if err != nil {
		return 0, util.LogError("[RevokedTokenRepo] не удалось удалить устаревшие записи", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[RevokedTokenRepo] не удалось получить число удалённых строк", err)
	}

	return rowsAffected, nil
}
