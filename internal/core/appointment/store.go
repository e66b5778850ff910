// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package appointment

import "context"

type Repository interface {
	ListAppointments(context context.Context, f Filter, limit, offset int) ([]*Appointment, int64, error)
	GetAppointment(context context.Context, id string) (*Appointment, error)
	CreateAppointment(context context.Context, a *Appointment) error
	UpdateAppointment(context context.Context, a *Appointment) error
	DeleteAppointment(context context.Context, id string) error
}
