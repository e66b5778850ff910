// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

/*
Package uuidv7 wraps time-ordered UUID generation.

All primary keys in the system use UUIDv7 so that identifiers sort by
creation time, which keeps B-tree inserts append-mostly.
*/
package uuidv7

import "github.com/google/uuid"

// New returns a new UUIDv7, or an error if entropy is unavailable.
func New() (uuid.UUID, error) {
	return uuid.NewV7()
}

// Must returns a new UUIDv7 and panics if generation fails.
// Entropy exhaustion is not a recoverable condition for request handling.
func Must() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}
