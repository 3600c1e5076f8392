package main

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/adapters/redissubscriber"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/adapters/subnetupdatepublisher"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/app"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/failban"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/factory"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/logger"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/storage/boltdb"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/storage/memory"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/storage/postgresdb"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/storage/redisdb"
)

// deps — собранные по конфигу хранилища и сервисы.
type deps struct {
	failban    *app.FailbanService
	trusted    *app.TrustedListService
	subscriber *redissubscriber.SubnetUpdatesSubscriber // nil вне режима external
	closers    []func() error
}

// Close закрывает хранилища в обратном порядке открытия.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

func buildDeps(cfg *config.Config, logg *logger.Logger) (_ *deps, err error) {
	var (
		recordStore ports.RecordStore
		subnetRepo  ports.SubnetRepo
		publisher   ports.SubnetUpdatesPublisher
		subRDB      *redis.Client
	)
	d := &deps{}
	// при ошибке закрываем то, что успели открыть
	defer func() {
		if err != nil {
			_ = d.Close()
		}
	}()

	// --------- Репозитории ---------
	switch cfg.Database.Workmode {
	case config.WorkmodeLocal:
		recordStore = memory.NewRecordsDB()
		subnetRepo = memory.NewSubnetListDB()

	case config.WorkmodeEmbedded:
		bolt, err := boltdb.Open(cfg.Database.Bolt.Path, cfg.Database.Bolt.OpenTimeout)
		if err != nil {
			return nil, fmt.Errorf("open bolt records: %w", err)
		}
		d.closers = append(d.closers, bolt.Close)
		recordStore = bolt
		subnetRepo = memory.NewSubnetListDB()

	case config.WorkmodeExternal:
		db, err := postgresdb.NewDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
		}
		d.closers = append(d.closers, db.Close)
		subnetRepo = postgresdb.NewSubnetListDB(db)

		if cfg.Database.Records == config.RecordsPostgres {
			recordStore = postgresdb.NewRecordsDB(db)
		} else {
			rdb, err := factory.NewClientRecords(&cfg.Database)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize Redis records client: %w", err)
			}
			d.closers = append(d.closers, rdb.Close)
			recordStore = redisdb.NewRecordsRepo(rdb, cfg.Database.Redis.KeyPrefix)
		}

		subRDB, err = factory.NewClientSubscriber(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis subscriber client: %w", err)
		}
		d.closers = append(d.closers, subRDB.Close)

	default:
		return nil, fmt.Errorf("%w: unknown database.workmode %q", config.ErrInvalidConfig, cfg.Database.Workmode)
	}

	// --------- Сервисы ---------
	d.failban, err = app.NewFailbanService(recordStore, subnetRepo, failban.ConfigFrom(&cfg.Failban), logg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize failban service: %w", err)
	}

	// Оповещение об изменении доверенных подсетей: в external через redis,
	// иначе перечитываем список в этом же процессе.
	channel := cfg.Database.Redis.Subscriber.SubnetsChannel
	if subRDB != nil {
		publisher = subnetupdatepublisher.NewRedisSubnetUpdatesPublisher(subRDB, channel)
		d.subscriber = redissubscriber.NewSubnetUpdatesSubscriber(subRDB, d.failban, channel).
			WithLogger(logg.With("component", "subscriber"))
	} else {
		publisher = subnetupdatepublisher.NewLocalSubnetUpdatesPublisher(d.failban)
	}
	d.trusted = app.NewTrustedListService(subnetRepo, publisher)

	return d, nil
}
