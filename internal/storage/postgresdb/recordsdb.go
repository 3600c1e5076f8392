package postgresdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var (
	_ ports.RecordStore  = (*RecordsDB)(nil)
	_ ports.RecordLocker = (*RecordsDB)(nil)
)

// Ключ advisory-блокировки записей failban ("failban" в ASCII).
const recordsLockID int64 = 0x6661696c62616e

// RecordsDB хранит записи failban в таблице failban_records, по строке на ключ.
// Содержимое лежит в колонке jsonb и заменяется целиком.
type RecordsDB struct {
	db *sqlx.DB
}

func NewRecordsDB(db *sqlx.DB) *RecordsDB {
	return &RecordsDB{db: db}
}

func (r *RecordsDB) Load(ctx context.Context, key domain.RecordKey) ([]byte, error) {
	const query = `
	SELECT payload
	FROM failban_records
	WHERE name = $1`
	var payload []byte
	err := r.db.GetContext(ctx, &payload, query, string(key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *RecordsDB) Save(ctx context.Context, key domain.RecordKey, data []byte) error {
	const query = `
	INSERT INTO failban_records (name, payload, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (name) DO UPDATE
	SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query, string(key), string(data))
	return err
}

// Lock берёт сессионную advisory-блокировку на отдельном соединении пула.
// Соединение держится до снятия блокировки, затем возвращается в пул.
func (r *RecordsDB) Lock(ctx context.Context) (func(), error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection for records lock: %w", err)
	}
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, recordsLockID); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pg_advisory_lock: %w", err)
	}

	return func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, recordsLockID)
		_ = conn.Close()
	}, nil
}
