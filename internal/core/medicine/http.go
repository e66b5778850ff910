// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package medicine

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

// RegisterRoutes mounts the medicine CRUD endpoints. The router is expected
// to already sit behind the authentication gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listMedicines)
	router.Post("/", handler.createMedicine)
	router.Get("/{id}", handler.getMedicine)
	router.Patch("/{id}", handler.updateMedicine)
	router.Delete("/{id}", handler.deleteMedicine)
}

func (handler *Handler) listMedicines(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:        request.URL.Query().Get("q"),
		Manufacturer: request.URL.Query().Get("manufacturer"),
	}

	medicines, total, err := handler.service.ListMedicines(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, medicines, pagination.NewMeta(paginationParams, total))
}

func (handler *Handler) getMedicine(writer http.ResponseWriter, request *http.Request) {
	medicine, err := handler.service.GetMedicine(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, medicine)
}

func (handler *Handler) createMedicine(writer http.ResponseWriter, request *http.Request) {
	var input Medicine
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.CreateMedicine(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateMedicine(writer http.ResponseWriter, request *http.Request) {
	var input Medicine
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.UpdateMedicine(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteMedicine(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteMedicine(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
