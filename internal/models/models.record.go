// FilePath: internal/models/models.record.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// JSON is a wrapper around map[string]interface{} for database storage
type JSON map[string]interface{}

// Value implements the driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &j)
}

type RecordKind string

const (
	KindEntry       RecordKind = "entrada"
	KindExit        RecordKind = "saida"
	KindPredator    RecordKind = "predador"
	KindTemperature RecordKind = "temperatura"
	KindHumidity    RecordKind = "umidade"
)

// ValidKind reports whether k is one of the known record kinds.
func ValidKind(k RecordKind) bool {
	switch k {
	case KindEntry, KindExit, KindPredator, KindTemperature, KindHumidity:
		return true
	}
	return false
}

const (
	OriginCamera = "camera"
	OriginManual = "manual"
)

// ValidOrigin reports whether o is one of the known record origins.
func ValidOrigin(o string) bool {
	return o == OriginCamera || o == OriginManual
}

// Record is a single observation about a hive, submitted manually or by
// the camera simulation. Records are immutable once created.
type Record struct {
	ID        string     `json:"id" db:"id"`
	HiveID    string     `json:"colmeia" db:"hive_id"`
	Kind      RecordKind `json:"tipo" db:"kind"`
	Value     float64    `json:"valor" db:"value"`
	Origin    string     `json:"origem" db:"origin"`
	Metadata  JSON       `json:"metadata" db:"metadata"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
