package postgresdb

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.SubnetRepo = (*SubnetListDB)(nil)

type subnetRow struct {
	CIDR     string `db:"cidr"`
	ListType string `db:"list_type"`
}

type SubnetListDB struct {
	db *sqlx.DB
}

func NewSubnetListDB(db *sqlx.DB) *SubnetListDB {
	return &SubnetListDB{db: db}
}

func (s *SubnetListDB) GetSubnetLists(ctx context.Context, listType domain.ListType) ([]string, error) {
	const query = `
	SELECT cidr
	FROM subnets
	WHERE list_type = $1
	ORDER BY id`
	var cidrs []string
	err := s.db.SelectContext(ctx, &cidrs, query, listType)
	if err != nil {
		return nil, err
	}
	return cidrs, nil
}

func (s *SubnetListDB) SaveSubnetList(ctx context.Context, listType domain.ListType, cidrs []string) error {
	if len(cidrs) == 0 {
		return nil
	}
	const insertQuery = `
    INSERT INTO subnets (cidr, list_type)
    VALUES (:cidr, :list_type)
    ON CONFLICT (cidr, list_type) DO NOTHING;
`
	rows := make([]subnetRow, 0, len(cidrs))
	for _, cidr := range cidrs {
		rows = append(rows, subnetRow{
			CIDR:     cidr,
			ListType: string(listType),
		})
	}

	_, err := s.db.NamedExecContext(ctx, insertQuery, rows)
	return err
}

func (s *SubnetListDB) ClearSubnetList(ctx context.Context, listType domain.ListType) error {
	const query = `
    DELETE FROM subnets
    WHERE list_type = $1`

	// факт удаления не важен, число строк не проверяем
	_, err := s.db.ExecContext(ctx, query, listType)
	return err
}

func (s *SubnetListDB) AddCIDRToSubnetList(ctx context.Context, listType domain.ListType, cidr string) error {
	if cidr == "" {
		return ErrEmptyCIDR
	}
	const query = `
    INSERT INTO subnets (cidr, list_type)
    VALUES (:cidr, :list_type)
    ON CONFLICT (cidr, list_type) DO NOTHING`

	// дубликат считаем успехом
	_, err := s.db.NamedExecContext(ctx, query, subnetRow{CIDR: cidr, ListType: string(listType)})
	return err
}

func (s *SubnetListDB) RemoveCIDRFromSubnetList(ctx context.Context, listType domain.ListType, cidr string) error {
	if cidr == "" {
		return ErrEmptyCIDR
	}
	const query = `
    DELETE FROM subnets
    WHERE cidr = :cidr
	AND list_type = :list_type`

	_, err := s.db.NamedExecContext(ctx, query, subnetRow{CIDR: cidr, ListType: string(listType)})
	return err
}
