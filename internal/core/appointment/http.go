// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package appointment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/clinicore/clinicore/internal/platform/request"
	"github.com/clinicore/clinicore/internal/platform/respond"
	"github.com/clinicore/clinicore/internal/platform/validate"
	"github.com/clinicore/clinicore/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the appointment CRUD endpoints. The router is
// expected to already sit behind the authentication gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAppointments)
	router.Post("/", handler.createAppointment)
	router.Get("/{id}", handler.getAppointment)
	router.Patch("/{id}", handler.updateAppointment)
	router.Delete("/{id}", handler.deleteAppointment)
}

func (handler *Handler) listAppointments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		PatientID: request.URL.Query().Get("patient_id"),
		DoctorID:  request.URL.Query().Get("doctor_id"),
		Date:      request.URL.Query().Get("date"),
		Status:    request.URL.Query().Get("status"),
	}

	appointments, total, err := handler.service.ListAppointments(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, appointments, pagination.NewMeta(paginationParams, total))
}

func (handler *Handler) getAppointment(writer http.ResponseWriter, request *http.Request) {
	appointment, err := handler.service.GetAppointment(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, appointment)
}

func (handler *Handler) createAppointment(writer http.ResponseWriter, request *http.Request) {
	var input Appointment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.CreateAppointment(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateAppointment(writer http.ResponseWriter, request *http.Request) {
	var input Appointment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.UpdateAppointment(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteAppointment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteAppointment(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
