// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package medicine

import "context"

type Repository interface {
	ListMedicines(context context.Context, f Filter, limit, offset int) ([]*Medicine, int64, error)
	GetMedicine(context context.Context, id string) (*Medicine, error)
	CreateMedicine(context context.Context, m *Medicine) error
	UpdateMedicine(context context.Context, m *Medicine) error
	DeleteMedicine(context context.Context, id string) error
}
