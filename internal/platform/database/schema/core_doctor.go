// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package schema

// CoreDoctorTable represents the 'core.doctor' table
type CoreDoctorTable struct {
	Table          string
	ID             string
	Name           string
	NIP            string
	SIP            string
	Specialization string
	Status         string
	CreatedAt      string
	UpdatedAt      string
	DeletedAt      string
}

// CoreDoctor is the schema definition for core.doctor
var CoreDoctor = CoreDoctorTable{
	Table:          "core.doctor",
	ID:             "id",
	Name:           "name",
	NIP:            "nip",
	SIP:            "sip",
	Specialization: "specialization",
	Status:         "status",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
	DeletedAt:      "deletedat",
}

func (t CoreDoctorTable) Columns() []string {
	return []string{t.ID, t.Name, t.NIP, t.SIP, t.Specialization, t.Status, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
