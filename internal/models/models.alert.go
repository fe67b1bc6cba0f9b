// FilePath: internal/models/models.alert.go
package models

import "time"

type AlertLevel string

const (
	LevelInfo    AlertLevel = "info"
	LevelWarning AlertLevel = "warning"
	LevelDanger  AlertLevel = "danger"
)

// OriginRuleEngine tags alerts synthesized by the rule evaluator.
const OriginRuleEngine = "motor-alerta"

// Alert is a derived notification about a hive. Alerts are created only by
// the rule evaluator and mutated only by the acknowledge operation.
type Alert struct {
	ID           string     `json:"id" db:"id"`
	HiveID       string     `json:"colmeia,omitempty" db:"hive_id"`
	Level        AlertLevel `json:"nivel" db:"level"`
	Message      string     `json:"mensagem" db:"message"`
	Origin       string     `json:"origem" db:"origin"`
	Acknowledged bool       `json:"reconhecido" db:"acknowledged"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}
