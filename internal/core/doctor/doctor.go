// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package doctor

import "time"

// Doctor represents a licensed practitioner registered with the clinic.
type Doctor struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	NIP            string     `json:"nip"` // employee identification number
	SIP            string     `json:"sip"` // practice license number
	Specialization string     `json:"specialization"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated doctor search.
type Filter struct {
	Query          string // ILIKE search against name
	Specialization string
	Status         string
}

// Doctor availability states.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Global field names for validation
const (
	FieldName           = "name"
	FieldNIP            = "nip"
	FieldSIP            = "sip"
	FieldSpecialization = "specialization"
	FieldStatus         = "status"
)
