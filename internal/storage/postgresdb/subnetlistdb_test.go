package postgresdb

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	sx := sqlx.NewDb(db, "sqlmock")
	cleanup := func() {
		sx.Close()
	}
	return sx, mock, cleanup
}

func TestGetSubnetLists_Success(t *testing.T) {
	db, mock, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	rows := sqlmock.NewRows([]string{"cidr"}).AddRow("1.2.3.0/24").AddRow("10.0.0.0/8")
	mock.ExpectQuery("SELECT cidr\\s+FROM subnets\\s+WHERE list_type = \\$1").
		WithArgs(domain.Trusted).WillReturnRows(rows)

	got, err := s.GetSubnetLists(context.Background(), domain.Trusted)
	if err != nil {
		t.Fatalf("GetSubnetLists error: %v", err)
	}
	if len(got) != 2 || got[0] != "1.2.3.0/24" {
		t.Fatalf("unexpected rows: %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetSubnetLists_Error(t *testing.T) {
	db, mock, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	mock.ExpectQuery("SELECT cidr").WithArgs(domain.Trusted).WillReturnError(errors.New("db error"))

	if _, err := s.GetSubnetLists(context.Background(), domain.Trusted); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSaveSubnetList_Empty_NoExec(t *testing.T) {
	db, mock, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	// no expectation: empty slice is a no-op
	if err := s.SaveSubnetList(context.Background(), domain.Trusted, []string{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveSubnetList_Exec(t *testing.T) {
	db, mock, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	mock.ExpectExec("INSERT INTO subnets").WillReturnResult(sqlmock.NewResult(1, 2))

	if err := s.SaveSubnetList(context.Background(), domain.Trusted, []string{"1.2.3.0/24", "10.0.0.0/8"}); err != nil {
		t.Fatalf("SaveSubnetList error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClearSubnetList_Exec(t *testing.T) {
	db, mock, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	mock.ExpectExec("DELETE FROM subnets\\s+WHERE list_type = \\$1").
		WithArgs(domain.Trusted).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.ClearSubnetList(context.Background(), domain.Trusted); err != nil {
		t.Fatalf("ClearSubnetList error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddRemoveCIDR_Empty(t *testing.T) {
	db, _, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	if err := s.AddCIDRToSubnetList(context.Background(), domain.Trusted, ""); !errors.Is(err, ErrEmptyCIDR) {
		t.Fatalf("expected ErrEmptyCIDR, got %v", err)
	}
	if err := s.RemoveCIDRFromSubnetList(context.Background(), domain.Trusted, ""); !errors.Is(err, ErrEmptyCIDR) {
		t.Fatalf("expected ErrEmptyCIDR, got %v", err)
	}
}

func TestAddCIDRToSubnetList_Exec(t *testing.T) {
	db, mock, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	mock.ExpectExec("INSERT INTO subnets").
		WithArgs("1.2.3.0/24", "trusted").WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.AddCIDRToSubnetList(context.Background(), domain.Trusted, "1.2.3.0/24"); err != nil {
		t.Fatalf("AddCIDRToSubnetList error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveCIDRFromSubnetList_Exec(t *testing.T) {
	db, mock, cleanup := setup(t)
	defer cleanup()
	s := NewSubnetListDB(db)

	mock.ExpectExec("DELETE FROM subnets").WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.RemoveCIDRFromSubnetList(context.Background(), domain.Trusted, "1.2.3.0/24"); err != nil {
		t.Fatalf("RemoveCIDRFromSubnetList error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDSN(t *testing.T) {
	var cfg config.Database
	cfg.Postgresql.Dsn = "postgres://x@y/z"
	if dsn, err := DSN(&cfg); err != nil || dsn != "postgres://x@y/z" {
		t.Fatalf("expected explicit dsn, got %q, %v", dsn, err)
	}

	cfg.Postgresql.Dsn = ""
	cfg.Postgresql.User = "u"
	cfg.Postgresql.Password = "p"
	cfg.Postgresql.Host = "db"
	cfg.Postgresql.Port = 5432
	cfg.Postgresql.Name = "failban"
	if dsn, _ := DSN(&cfg); dsn != "postgres://u:p@db:5432/failban" {
		t.Fatalf("unexpected dsn %q", dsn)
	}

	cfg.Postgresql.Host = ""
	if _, err := DSN(&cfg); !errors.Is(err, ErrEmptyDSN) {
		t.Fatalf("expected ErrEmptyDSN, got %v", err)
	}
}
