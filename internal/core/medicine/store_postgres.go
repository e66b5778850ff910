// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package medicine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicore/clinicore/internal/platform/apperr"
	"github.com/clinicore/clinicore/internal/platform/database/schema"
	"github.com/clinicore/clinicore/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func medicineColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.CoreMedicine.ID, schema.CoreMedicine.MasterMedicineID, schema.CoreMedicine.BatchNumber,
		schema.CoreMedicine.TradeName, schema.CoreMedicine.ProductionDate, schema.CoreMedicine.ExpiredDate,
		schema.CoreMedicine.PurchasePrice, schema.CoreMedicine.SellingPrice, schema.CoreMedicine.Quantity,
		schema.CoreMedicine.Manufacturer, schema.CoreMedicine.CreatedAt, schema.CoreMedicine.UpdatedAt,
	)
}

func scanMedicine(scan func(dest ...any) error) (*Medicine, error) {
	m := &Medicine{}
	err := scan(
		&m.ID, &m.MasterMedicineID, &m.BatchNumber, &m.TradeName, &m.ProductionDate,
		&m.ExpiredDate, &m.PurchasePrice, &m.SellingPrice, &m.Quantity,
		&m.Manufacturer, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (repository *PostgresRepository) ListMedicines(context context.Context, f Filter, limit, offset int) ([]*Medicine, int64, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
	`, medicineColumns(), schema.CoreMedicine.Table, schema.CoreMedicine.DeletedAt)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, schema.CoreMedicine.Table, schema.CoreMedicine.DeletedAt)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := ` AND tradename ILIKE $` + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.Manufacturer != "" {
		clause := ` AND manufacturer = $` + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Manufacturer)
		countArgs = append(countArgs, f.Manufacturer)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.CoreMedicine.TradeName) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int64
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Medicine")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Medicine")
	}
	defer rows.Close()

	var medicines []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows.Scan)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Medicine")
		}
		medicines = append(medicines, m)
	}

	return medicines, total, nil
}

func (repository *PostgresRepository) GetMedicine(context context.Context, id string) (*Medicine, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, medicineColumns(), schema.CoreMedicine.Table, schema.CoreMedicine.ID, schema.CoreMedicine.DeletedAt)

	m, err := scanMedicine(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "Medicine")
	}
	return m, nil
}

func (repository *PostgresRepository) CreateMedicine(context context.Context, m *Medicine) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreMedicine.Table, medicineColumns(), schema.CoreMedicine.CreatedAt, schema.CoreMedicine.UpdatedAt,
		schema.CoreMedicine.CreatedAt, schema.CoreMedicine.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.MasterMedicineID, m.BatchNumber, m.TradeName, m.ProductionDate,
		m.ExpiredDate, m.PurchasePrice, m.SellingPrice, m.Quantity, m.Manufacturer,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "Medicine")
}

func (repository *PostgresRepository) UpdateMedicine(context context.Context, m *Medicine) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CoreMedicine.Table,
		schema.CoreMedicine.MasterMedicineID, schema.CoreMedicine.BatchNumber, schema.CoreMedicine.TradeName,
		schema.CoreMedicine.ProductionDate, schema.CoreMedicine.ExpiredDate, schema.CoreMedicine.PurchasePrice,
		schema.CoreMedicine.SellingPrice, schema.CoreMedicine.Quantity, schema.CoreMedicine.Manufacturer,
		schema.CoreMedicine.UpdatedAt,
		schema.CoreMedicine.ID, schema.CoreMedicine.DeletedAt,
		schema.CoreMedicine.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.MasterMedicineID, m.BatchNumber, m.TradeName, m.ProductionDate,
		m.ExpiredDate, m.PurchasePrice, m.SellingPrice, m.Quantity, m.Manufacturer,
	).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "Medicine")
}

func (repository *PostgresRepository) DeleteMedicine(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CoreMedicine.Table, schema.CoreMedicine.DeletedAt, schema.CoreMedicine.ID, schema.CoreMedicine.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Medicine")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Medicine")
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
