// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package doctor_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinicore/internal/core/doctor"
	"github.com/clinicore/clinicore/internal/platform/apperr"
)

type memoryDoctorRepository struct {
	doctors map[string]*doctor.Doctor
}

func newMemoryDoctorRepository() *memoryDoctorRepository {
	return &memoryDoctorRepository{doctors: make(map[string]*doctor.Doctor)}
}

func (r *memoryDoctorRepository) ListDoctors(_ context.Context, _ doctor.Filter, _, _ int) ([]*doctor.Doctor, int64, error) {
	list := make([]*doctor.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		list = append(list, d)
	}
	return list, int64(len(list)), nil
}

func (r *memoryDoctorRepository) GetDoctor(_ context.Context, id string) (*doctor.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		return d, nil
	}
	return nil, apperr.NotFound("Doctor")
}

func (r *memoryDoctorRepository) CreateDoctor(_ context.Context, d *doctor.Doctor) error {
	r.doctors[d.ID] = d
	return nil
}

func (r *memoryDoctorRepository) UpdateDoctor(_ context.Context, d *doctor.Doctor) error {
	if _, ok := r.doctors[d.ID]; !ok {
		return apperr.NotFound("Doctor")
	}
	r.doctors[d.ID] = d
	return nil
}

func (r *memoryDoctorRepository) DeleteDoctor(_ context.Context, id string) error {
	if _, ok := r.doctors[id]; !ok {
		return apperr.NotFound("Doctor")
	}
	delete(r.doctors, id)
	return nil
}

func newDoctorService() (*doctor.Service, *memoryDoctorRepository) {
	repo := newMemoryDoctorRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return doctor.NewService(repo, logger), repo
}

func validDoctor() *doctor.Doctor {
	return &doctor.Doctor{
		Name:           "dr. Budi Santoso",
		NIP:            "197001012000011001",
		SIP:            "SIP/2024/001",
		Specialization: "Cardiology",
	}
}

/*
TestService_CreateDoctor assigns an ID and defaults the status to active.
*/
func TestService_CreateDoctor(t *testing.T) {
	service, repo := newDoctorService()

	d := validDoctor()
	require.NoError(t, service.CreateDoctor(context.Background(), d))

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, doctor.StatusActive, d.Status)
	assert.Contains(t, repo.doctors, d.ID)
}

/*
TestService_CreateDoctor_Validation rejects incomplete or malformed records.
*/
func TestService_CreateDoctor_Validation(t *testing.T) {
	service, repo := newDoctorService()

	tests := []struct {
		name   string
		mutate func(*doctor.Doctor)
	}{
		{"missing_name", func(d *doctor.Doctor) { d.Name = "" }},
		{"missing_nip", func(d *doctor.Doctor) { d.NIP = "" }},
		{"missing_sip", func(d *doctor.Doctor) { d.SIP = "" }},
		{"missing_specialization", func(d *doctor.Doctor) { d.Specialization = "" }},
		{"bad_status", func(d *doctor.Doctor) { d.Status = "retired" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDoctor()
			tt.mutate(d)

			err := service.CreateDoctor(context.Background(), d)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, repo.doctors)
		})
	}
}

/*
TestService_UpdateDoctor writes through after validation, keyed by the path ID.
*/
func TestService_UpdateDoctor(t *testing.T) {
	service, repo := newDoctorService()

	d := validDoctor()
	require.NoError(t, service.CreateDoctor(context.Background(), d))

	updated := validDoctor()
	updated.Specialization = "Neurology"
	updated.Status = doctor.StatusInactive
	require.NoError(t, service.UpdateDoctor(context.Background(), d.ID, updated))

	assert.Equal(t, "Neurology", repo.doctors[d.ID].Specialization)
	assert.Equal(t, doctor.StatusInactive, repo.doctors[d.ID].Status)
}

/*
TestService_DeleteDoctor surfaces NotFound for unknown IDs.
*/
func TestService_DeleteDoctor(t *testing.T) {
	service, _ := newDoctorService()

	err := service.DeleteDoctor(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
