// FilePath: internal/alerting/rules_test.go
package alerting

import (
	"testing"

	"github.com/smarthive/hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePredatorRecord(t *testing.T) {
	e := NewEvaluator()

	alert := e.Evaluate(&models.Record{
		HiveID: "hv_1",
		Kind:   models.KindPredator,
		Value:  1,
		Origin: models.OriginCamera,
	})

	require.NotNil(t, alert)
	assert.Equal(t, "hv_1", alert.HiveID)
	assert.Equal(t, models.LevelDanger, alert.Level)
	assert.Equal(t, MsgPredatorDetected, alert.Message)
	assert.Equal(t, models.OriginCamera, alert.Origin)
	assert.False(t, alert.Acknowledged)
}

func TestEvaluateLowEntryFlow(t *testing.T) {
	e := NewEvaluator()

	alert := e.Evaluate(&models.Record{
		HiveID: "hv_2",
		Kind:   models.KindEntry,
		Value:  2,
	})

	require.NotNil(t, alert)
	assert.Equal(t, models.LevelWarning, alert.Level)
	assert.Equal(t, MsgLowEntryFlow, alert.Message)
	assert.Equal(t, models.OriginRuleEngine, alert.Origin)
}

func TestEvaluateEntryFlowAtThreshold(t *testing.T) {
	e := NewEvaluator()

	// Value 3 is normal flow, strictly below 3 is not.
	assert.Nil(t, e.Evaluate(&models.Record{Kind: models.KindEntry, Value: 3}))
	assert.NotNil(t, e.Evaluate(&models.Record{Kind: models.KindEntry, Value: 2.9}))
}

func TestEvaluateBenignRecords(t *testing.T) {
	e := NewEvaluator()

	cases := []struct {
		name   string
		record models.Record
	}{
		{"exit", models.Record{Kind: models.KindExit, Value: 0}},
		{"temperature", models.Record{Kind: models.KindTemperature, Value: 1}},
		{"humidity", models.Record{Kind: models.KindHumidity, Value: 2}},
		{"healthy entry flow", models.Record{Kind: models.KindEntry, Value: 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, e.Evaluate(&tc.record))
		})
	}
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	// Two rules that both match: only the first in table order fires.
	matchAll := func(r *models.Record) bool { return true }
	e := NewEvaluatorWithRules([]Rule{
		{
			Name:    "first",
			Matches: matchAll,
			Build: func(r *models.Record) *models.Alert {
				return &models.Alert{Message: "first"}
			},
		},
		{
			Name:    "second",
			Matches: matchAll,
			Build: func(r *models.Record) *models.Alert {
				return &models.Alert{Message: "second"}
			},
		},
	})

	alert := e.Evaluate(&models.Record{Kind: models.KindEntry})
	require.NotNil(t, alert)
	assert.Equal(t, "first", alert.Message)
}
