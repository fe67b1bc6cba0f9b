// FilePath: internal/models/models.apiary.go
package models

import "time"

// Apiary is a physical site containing hives, owned by a single user.
// Wire names stay compatible with the dashboard clients (Portuguese).
type Apiary struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"nome" db:"name" writexs:"user,admin"`
	Location    string    `json:"localizacao" db:"location" writexs:"user,admin"`
	Description string    `json:"descricao" db:"description" writexs:"user,admin"`
	OwnerID     string    `json:"owner" db:"owner_id" writexs:"system"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
