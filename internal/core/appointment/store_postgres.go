// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package appointment

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

func (repository *PostgresRepository) ListAppointments(context context.Context, f Filter, limit, offset int) ([]*Appointment, int64, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CoreAppointment.ID, schema.CoreAppointment.PatientID, schema.CoreAppointment.DoctorID,
		schema.CoreAppointment.Date, schema.CoreAppointment.Time, schema.CoreAppointment.Status,
		schema.CoreAppointment.CreatedAt, schema.CoreAppointment.UpdatedAt,
		schema.CoreAppointment.Table, schema.CoreAppointment.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, schema.CoreAppointment.Table, schema.CoreAppointment.DeletedAt)

	args := []any{}
	countArgs := []any{}

	appendClause := func(clause string, value string) {
		query += clause
		countQuery += clause
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.PatientID != "" {
		appendClause(` AND patientid = $`+itos(len(args)+1), f.PatientID)
	}
	if f.DoctorID != "" {
		appendClause(` AND doctorid = $`+itos(len(args)+1), f.DoctorID)
	}
	if f.Date != "" {
		appendClause(` AND date = $`+itos(len(args)+1), f.Date)
	}
	if f.Status != "" {
		appendClause(` AND status = $`+itos(len(args)+1), f.Status)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC, %s DESC LIMIT $", schema.CoreAppointment.Date, schema.CoreAppointment.Time) +
		itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int64
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Appointment")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Appointment")
	}
	defer rows.Close()

	var appointments []*Appointment
	for rows.Next() {
		a := &Appointment{}
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "Appointment")
		}
		appointments = append(appointments, a)
	}

	return appointments, total, nil
}

func (repository *PostgresRepository) GetAppointment(context context.Context, id string) (*Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreAppointment.ID, schema.CoreAppointment.PatientID, schema.CoreAppointment.DoctorID,
		schema.CoreAppointment.Date, schema.CoreAppointment.Time, schema.CoreAppointment.Status,
		schema.CoreAppointment.CreatedAt, schema.CoreAppointment.UpdatedAt,
		schema.CoreAppointment.Table, schema.CoreAppointment.ID, schema.CoreAppointment.DeletedAt,
	)
	a := &Appointment{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, dberr.Wrap(err, "Appointment")
}

func (repository *PostgresRepository) CreateAppointment(context context.Context, a *Appointment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreAppointment.Table, schema.CoreAppointment.ID, schema.CoreAppointment.PatientID,
		schema.CoreAppointment.DoctorID, schema.CoreAppointment.Date, schema.CoreAppointment.Time,
		schema.CoreAppointment.Status, schema.CoreAppointment.CreatedAt, schema.CoreAppointment.UpdatedAt,
		schema.CoreAppointment.CreatedAt, schema.CoreAppointment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "Appointment")
}

func (repository *PostgresRepository) UpdateAppointment(context context.Context, a *Appointment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CoreAppointment.Table, schema.CoreAppointment.PatientID, schema.CoreAppointment.DoctorID,
		schema.CoreAppointment.Date, schema.CoreAppointment.Time, schema.CoreAppointment.Status,
		schema.CoreAppointment.UpdatedAt, schema.CoreAppointment.ID, schema.CoreAppointment.DeletedAt,
		schema.CoreAppointment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status).
		Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "Appointment")
}

func (repository *PostgresRepository) DeleteAppointment(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CoreAppointment.Table, schema.CoreAppointment.DeletedAt, schema.CoreAppointment.ID, schema.CoreAppointment.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Appointment")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Appointment")
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
