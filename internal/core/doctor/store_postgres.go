// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package doctor

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

func (repository *PostgresRepository) ListDoctors(context context.Context, f Filter, limit, offset int) ([]*Doctor, int64, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CoreDoctor.ID, schema.CoreDoctor.Name, schema.CoreDoctor.NIP, schema.CoreDoctor.SIP,
		schema.CoreDoctor.Specialization, schema.CoreDoctor.Status, schema.CoreDoctor.CreatedAt, schema.CoreDoctor.UpdatedAt,
		schema.CoreDoctor.Table, schema.CoreDoctor.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, schema.CoreDoctor.Table, schema.CoreDoctor.DeletedAt)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := ` AND name ILIKE $` + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.Specialization != "" {
		clause := ` AND specialization = $` + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Specialization)
		countArgs = append(countArgs, f.Specialization)
	}

	if f.Status != "" {
		clause := ` AND status = $` + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Status)
		countArgs = append(countArgs, f.Status)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.CoreDoctor.Name) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int64
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Doctor")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Doctor")
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		d := &Doctor{}
		if err := rows.Scan(&d.ID, &d.Name, &d.NIP, &d.SIP, &d.Specialization, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "Doctor")
		}
		doctors = append(doctors, d)
	}

	return doctors, total, nil
}

func (repository *PostgresRepository) GetDoctor(context context.Context, id string) (*Doctor, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreDoctor.ID, schema.CoreDoctor.Name, schema.CoreDoctor.NIP, schema.CoreDoctor.SIP,
		schema.CoreDoctor.Specialization, schema.CoreDoctor.Status, schema.CoreDoctor.CreatedAt, schema.CoreDoctor.UpdatedAt,
		schema.CoreDoctor.Table, schema.CoreDoctor.ID, schema.CoreDoctor.DeletedAt,
	)
	d := &Doctor{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&d.ID, &d.Name, &d.NIP, &d.SIP, &d.Specialization, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)

	return d, dberr.Wrap(err, "Doctor")
}

func (repository *PostgresRepository) CreateDoctor(context context.Context, d *Doctor) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreDoctor.Table, schema.CoreDoctor.ID, schema.CoreDoctor.Name, schema.CoreDoctor.NIP,
		schema.CoreDoctor.SIP, schema.CoreDoctor.Specialization, schema.CoreDoctor.Status,
		schema.CoreDoctor.CreatedAt, schema.CoreDoctor.UpdatedAt,
		schema.CoreDoctor.CreatedAt, schema.CoreDoctor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, d.ID, d.Name, d.NIP, d.SIP, d.Specialization, d.Status).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	return dberr.Wrap(err, "Doctor")
}

func (repository *PostgresRepository) UpdateDoctor(context context.Context, d *Doctor) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CoreDoctor.Table, schema.CoreDoctor.Name, schema.CoreDoctor.NIP, schema.CoreDoctor.SIP,
		schema.CoreDoctor.Specialization, schema.CoreDoctor.Status, schema.CoreDoctor.UpdatedAt,
		schema.CoreDoctor.ID, schema.CoreDoctor.DeletedAt,
		schema.CoreDoctor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, d.ID, d.Name, d.NIP, d.SIP, d.Specialization, d.Status).
		Scan(&d.UpdatedAt)
	return dberr.Wrap(err, "Doctor")
}

func (repository *PostgresRepository) DeleteDoctor(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CoreDoctor.Table, schema.CoreDoctor.DeletedAt, schema.CoreDoctor.ID, schema.CoreDoctor.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Doctor")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Doctor")
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
