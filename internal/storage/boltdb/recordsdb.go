package boltdb

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.RecordStore = (*RecordsDB)(nil)

var recordsBucket = []byte("failban_records")

// RecordsDB — файловое хранилище записей failban для режима embedded.
// Все записи лежат в одном bucket, ключ bucket'а совпадает с именем записи.
type RecordsDB struct {
	db *bolt.DB
}

// Open открывает (или создаёт) файл базы и bucket записей.
// Файл блокируется на время работы, второй процесс будет ждать openTimeout.
func Open(path string, openTimeout time.Duration) (*RecordsDB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &RecordsDB{db: db}, nil
}

func (r *RecordsDB) Load(_ context.Context, key domain.RecordKey) ([]byte, error) {
	var data []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(recordsBucket).Get([]byte(key))
		if v != nil {
			// значение валидно только внутри транзакции
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RecordsDB) Save(_ context.Context, key domain.RecordKey, data []byte) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(key), data)
	})
}

func (r *RecordsDB) Path() string { return r.db.Path() }

func (r *RecordsDB) Close() error {
	return r.db.Close()
}
