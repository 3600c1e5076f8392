package ports

import "context"

// RecordLocker — блокировка записей failban, общая для всех экземпляров сервиса,
// работающих с одним хранилищем. Её реализуют внешние хранилища (redis, postgres);
// движок захватывает блокировку на время чтения-изменения-записи.
type RecordLocker interface {
	// Lock ждёт захвата блокировки и возвращает функцию её снятия.
	Lock(ctx context.Context) (unlock func(), err error)
}
