// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package medicine

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

func (service *Service) ListMedicines(context context.Context, filter Filter, limit, offset int) ([]*Medicine, int64, error) {
	return service.repo.ListMedicines(context, filter, limit, offset)
}

func (service *Service) GetMedicine(context context.Context, id string) (*Medicine, error) {
	return service.repo.GetMedicine(context, id)
}

func (service *Service) CreateMedicine(context context.Context, medicine *Medicine) error {
	if err := validateMedicine(medicine); err != nil {
		return err
	}

	medicine.ID = uuidv7.Must().String()

	if err := service.repo.CreateMedicine(context, medicine); err != nil {
		return err
	}

	service.logger.Info("medicine_created",
		slog.String("medicine_id", medicine.ID),
		slog.String("trade_name", medicine.TradeName),
		slog.String("batch", medicine.BatchNumber),
	)
	return nil
}

func (service *Service) UpdateMedicine(context context.Context, id string, medicine *Medicine) error {
	medicine.ID = id
	if err := validateMedicine(medicine); err != nil {
		return err
	}

	if err := service.repo.UpdateMedicine(context, medicine); err != nil {
		return err
	}

	service.logger.Info("medicine_updated", slog.String("medicine_id", medicine.ID))
	return nil
}

func (service *Service) DeleteMedicine(context context.Context, id string) error {
	if err := service.repo.DeleteMedicine(context, id); err != nil {
		return err
	}

	service.logger.Warn("medicine_deleted", slog.String("medicine_id", id))
	return nil
}

func validateMedicine(medicine *Medicine) error {
	validator := &validate.Validator{}

	validator.Required(FieldTradeName, medicine.TradeName).MaxLen(FieldTradeName, medicine.TradeName, 200).
		Required(FieldBatchNumber, medicine.BatchNumber).MaxLen(FieldBatchNumber, medicine.BatchNumber, 100).
		Required(FieldManufacturer, medicine.Manufacturer).MaxLen(FieldManufacturer, medicine.Manufacturer, 200).
		Date(FieldProductionDate, medicine.ProductionDate).
		Date(FieldExpiredDate, medicine.ExpiredDate).
		Positive(FieldPurchasePrice, medicine.PurchasePrice).
		Positive(FieldSellingPrice, medicine.SellingPrice)

	return validator.Err()
}
