// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package doctor

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

func (service *Service) ListDoctors(context context.Context, filter Filter, limit, offset int) ([]*Doctor, int64, error) {
	return service.repo.ListDoctors(context, filter, limit, offset)
}

func (service *Service) GetDoctor(context context.Context, id string) (*Doctor, error) {
	return service.repo.GetDoctor(context, id)
}

func (service *Service) CreateDoctor(context context.Context, doctor *Doctor) error {
	if err := validateDoctor(doctor); err != nil {
		return err
	}

	doctor.ID = uuidv7.Must().String()
	if doctor.Status == "" {
		doctor.Status = StatusActive
	}

	if err := service.repo.CreateDoctor(context, doctor); err != nil {
		return err
	}

	service.logger.Info("doctor_created", slog.String("doctor_id", doctor.ID), slog.String("name", doctor.Name))
	return nil
}

func (service *Service) UpdateDoctor(context context.Context, id string, doctor *Doctor) error {
	doctor.ID = id
	if err := validateDoctor(doctor); err != nil {
		return err
	}

	if err := service.repo.UpdateDoctor(context, doctor); err != nil {
		return err
	}

	service.logger.Info("doctor_updated", slog.String("doctor_id", doctor.ID))
	return nil
}

func (service *Service) DeleteDoctor(context context.Context, id string) error {
	if err := service.repo.DeleteDoctor(context, id); err != nil {
		return err
	}

	service.logger.Warn("doctor_deleted", slog.String("doctor_id", id))
	return nil
}

func validateDoctor(doctor *Doctor) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, doctor.Name).MaxLen(FieldName, doctor.Name, 200).
		Required(FieldNIP, doctor.NIP).MaxLen(FieldNIP, doctor.NIP, 50).
		Required(FieldSIP, doctor.SIP).MaxLen(FieldSIP, doctor.SIP, 50).
		Required(FieldSpecialization, doctor.Specialization).MaxLen(FieldSpecialization, doctor.Specialization, 100)

	if doctor.Status != "" {
		validator.OneOf(FieldStatus, doctor.Status, StatusActive, StatusInactive)
	}

	return validator.Err()
}
