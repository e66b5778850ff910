// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

/*
Package pagination provides shared primitives for offset-based pagination.

It parses page/limit query parameters from incoming requests, clamps them to
sane bounds, and builds the metadata block returned alongside paginated
collections.
*/
package pagination

import (
	"net/http"
	"strconv"
)

// # Defaults

const (
	// DefaultPage is the page used when the client omits the parameter.
	DefaultPage = 1

	// DefaultLimit is the page size used when the client omits the parameter.
	DefaultLimit = 20

	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// # Types

// Params holds normalized pagination inputs for list queries.
type Params struct {
	Page  int
	Limit int
}

// Meta describes the pagination state of a returned collection.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// # Functions

/*
FromRequest extracts pagination parameters from the request query string.

Invalid or missing values fall back to defaults, and limit is clamped to
MaxLimit. The returned Params is always safe to use in SQL OFFSET/LIMIT
clauses.
*/
func FromRequest(r *http.Request) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Page = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Limit = v
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	return p
}

// Offset returns the row offset implied by the page and limit.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMeta builds the response metadata for a collection of totalItems rows.
func NewMeta(p Params, totalItems int64) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
