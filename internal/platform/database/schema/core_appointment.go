// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package schema

// CoreAppointmentTable represents the 'core.appointment' table
type CoreAppointmentTable struct {
	Table     string
	ID        string
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Status    string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// CoreAppointment is the schema definition for core.appointment
var CoreAppointment = CoreAppointmentTable{
	Table:     "core.appointment",
	ID:        "id",
	PatientID: "patientid",
	DoctorID:  "doctorid",
	Date:      "date",
	Time:      "time",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t CoreAppointmentTable) Columns() []string {
	return []string{t.ID, t.PatientID, t.DoctorID, t.Date, t.Time, t.Status, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
