// FilePath: internal/models/models.hive.go
package models

import "time"

type HiveState string

const (
	HiveStateHealthy   HiveState = "saudável"
	HiveStateAttention HiveState = "atenção"
	HiveStateCritical  HiveState = "critico"
)

// DefaultHiveSpecies is used when a hive is created without a species.
const DefaultHiveSpecies = "Abelha nativa sem ferrão"

// Hive is a single managed colony enclosure located within an apiary.
// Moving a hive to another apiary is an admin-only write.
type Hive struct {
	ID         string    `json:"id" db:"id"`
	Identifier string    `json:"identificador" db:"identifier" writexs:"user,admin"`
	Species    string    `json:"especie" db:"species" writexs:"user,admin"`
	ApiaryID   string    `json:"apiario" db:"apiary_id" writexs:"admin"`
	State      HiveState `json:"estado" db:"state" writexs:"user,admin"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// ValidState reports whether s is one of the known hive states.
func ValidState(s HiveState) bool {
	switch s {
	case HiveStateHealthy, HiveStateAttention, HiveStateCritical:
		return true
	}
	return false
}
