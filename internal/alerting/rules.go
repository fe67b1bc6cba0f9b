// FilePath: internal/alerting/rules.go
package alerting

import "github.com/smarthive/hub/internal/models"

// lowEntryFlowThreshold is the inbound-flow value below which an entry
// record is considered abnormal.
const lowEntryFlowThreshold = 3

// Alert message texts, kept stable for the dashboard clients.
const (
	MsgPredatorDetected = "Possível predador detectado na entrada da colmeia"
	MsgLowEntryFlow     = "Baixo fluxo de entrada de abelhas"
)

// Rule maps a just-persisted record to a draft alert. Matches and Build
// must be pure: no I/O, no side effects.
type Rule struct {
	Name    string
	Matches func(r *models.Record) bool
	Build   func(r *models.Record) *models.Alert
}

// DefaultRules returns the rule table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "predator_detected",
			Matches: func(r *models.Record) bool {
				return r.Kind == models.KindPredator
			},
			Build: func(r *models.Record) *models.Alert {
				return &models.Alert{
					HiveID:  r.HiveID,
					Level:   models.LevelDanger,
					Message: MsgPredatorDetected,
					Origin:  models.OriginCamera,
				}
			},
		},
		{
			Name: "low_entry_flow",
			Matches: func(r *models.Record) bool {
				return r.Kind == models.KindEntry && r.Value < lowEntryFlowThreshold
			},
			Build: func(r *models.Record) *models.Alert {
				return &models.Alert{
					HiveID:  r.HiveID,
					Level:   models.LevelWarning,
					Message: MsgLowEntryFlow,
					Origin:  models.OriginRuleEngine,
				}
			},
		},
	}
}

// Evaluator decides whether a record warrants an alert.
type Evaluator struct {
	rules []Rule
}

// NewEvaluator creates an evaluator with the default rule table.
func NewEvaluator() *Evaluator {
	return &Evaluator{rules: DefaultRules()}
}

// NewEvaluatorWithRules creates an evaluator with a custom rule table,
// evaluated in the given order.
func NewEvaluatorWithRules(rules []Rule) *Evaluator {
	return &Evaluator{rules: rules}
}

// Evaluate returns the draft alert for the first matching rule, or nil.
// At most one alert is ever produced per record, regardless of how many
// rules would match.
func (e *Evaluator) Evaluate(record *models.Record) *models.Alert {
	for i := range e.rules {
		rule := &e.rules[i]
		if rule.Matches(record) {
			return rule.Build(record)
		}
	}
	return nil
}
