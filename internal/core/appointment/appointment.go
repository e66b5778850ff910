// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package appointment

import "time"

// Appointment represents a scheduled consultation between a patient and a doctor.
type Appointment struct {
	ID        string     `json:"id"`
	PatientID string     `json:"patient_id"`
	DoctorID  string     `json:"doctor_id"`
	Date      string     `json:"date"` // YYYY-MM-DD
	Time      string     `json:"time"` // HH:MM
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a paginated appointment search.
type Filter struct {
	PatientID string
	DoctorID  string
	Date      string
	Status    string
}

// Appointment lifecycle states.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Global field names for validation
const (
	FieldPatientID = "patient_id"
	FieldDoctorID  = "doctor_id"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldStatus    = "status"
)
