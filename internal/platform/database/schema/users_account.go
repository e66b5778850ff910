// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table            string
	ID               string
	Email            string
	Password         string
	Name             string
	RefreshToken     string
	ResetToken       string
	ResetTokenExpiry string
	CreatedAt        string
	UpdatedAt        string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:            "users.account",
	ID:               "id",
	Email:            "email",
	Password:         "passwordhash",
	Name:             "name",
	RefreshToken:     "refreshtoken",
	ResetToken:       "resettoken",
	ResetTokenExpiry: "resettokenexpiry",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.Name, t.RefreshToken,
		t.ResetToken, t.ResetTokenExpiry, t.CreatedAt, t.UpdatedAt,
	}
}
