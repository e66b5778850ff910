// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package doctor

import "context"

type Repository interface {
	ListDoctors(context context.Context, f Filter, limit, offset int) ([]*Doctor, int64, error)
	GetDoctor(context context.Context, id string) (*Doctor, error)
	CreateDoctor(context context.Context, d *Doctor) error
	UpdateDoctor(context context.Context, d *Doctor) error
	DeleteDoctor(context context.Context, id string) error
}
