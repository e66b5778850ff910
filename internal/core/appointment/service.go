// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package appointment

import (
	"context"
	"log/slog"

	"github.com/clinicore/clinicore/internal/platform/validate"
	"github.com/clinicore/clinicore/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAppointments(context context.Context, filter Filter, limit, offset int) ([]*Appointment, int64, error) {
	return service.repo.ListAppointments(context, filter, limit, offset)
}

func (service *Service) GetAppointment(context context.Context, id string) (*Appointment, error) {
	return service.repo.GetAppointment(context, id)
}

func (service *Service) CreateAppointment(context context.Context, appointment *Appointment) error {
	if err := validateAppointment(appointment); err != nil {
		return err
	}

	appointment.ID = uuidv7.Must().String()
	if appointment.Status == "" {
		appointment.Status = StatusScheduled
	}

	if err := service.repo.CreateAppointment(context, appointment); err != nil {
		return err
	}

	service.logger.Info("appointment_created",
		slog.String("appointment_id", appointment.ID),
		slog.String("doctor_id", appointment.DoctorID),
		slog.String("date", appointment.Date),
	)
	return nil
}

func (service *Service) UpdateAppointment(context context.Context, id string, appointment *Appointment) error {
	appointment.ID = id
	if err := validateAppointment(appointment); err != nil {
		return err
	}

	if err := service.repo.UpdateAppointment(context, appointment); err != nil {
		return err
	}

	service.logger.Info("appointment_updated", slog.String("appointment_id", appointment.ID))
	return nil
}

func (service *Service) DeleteAppointment(context context.Context, id string) error {
	if err := service.repo.DeleteAppointment(context, id); err != nil {
		return err
	}

	service.logger.Warn("appointment_deleted", slog.String("appointment_id", id))
	return nil
}

func validateAppointment(appointment *Appointment) error {
	validator := &validate.Validator{}

	validator.Required(FieldPatientID, appointment.PatientID).
		Required(FieldDoctorID, appointment.DoctorID).
		Required(FieldDate, appointment.Date).Date(FieldDate, appointment.Date).
		Required(FieldTime, appointment.Time)

	if appointment.Status != "" {
		validator.OneOf(FieldStatus, appointment.Status, StatusScheduled, StatusCompleted, StatusCancelled)
	}

	return validator.Err()
}
