// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package doctor

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

// RegisterRoutes mounts the doctor CRUD endpoints. The router is expected to
// already sit behind the authentication gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listDoctors)
	router.Post("/", handler.createDoctor)
	router.Get("/{id}", handler.getDoctor)
	router.Patch("/{id}", handler.updateDoctor)
	router.Delete("/{id}", handler.deleteDoctor)
}

func (handler *Handler) listDoctors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:          request.URL.Query().Get("q"),
		Specialization: request.URL.Query().Get("specialization"),
		Status:         request.URL.Query().Get("status"),
	}

	doctors, total, err := handler.service.ListDoctors(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, doctors, pagination.NewMeta(paginationParams, total))
}

func (handler *Handler) getDoctor(writer http.ResponseWriter, request *http.Request) {
	doctor, err := handler.service.GetDoctor(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doctor)
}

func (handler *Handler) createDoctor(writer http.ResponseWriter, request *http.Request) {
	var input Doctor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.CreateDoctor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateDoctor(writer http.ResponseWriter, request *http.Request) {
	var input Doctor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.UpdateDoctor(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteDoctor(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteDoctor(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
