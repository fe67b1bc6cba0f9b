// FilePath: internal/hubservice/hubservice.record_test.go
package hubservice

import (
	"context"
	"testing"
	"time"

	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecordPredatorRaisesAlert(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	sub := env.bus.Subscribe()

	record := &models.Record{HiveID: "hv_1", Kind: models.KindPredator, Value: 1}
	require.NoError(t, env.svc.CreateRecord(context.Background(), record))

	// Record is durable with generated id and timestamp.
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	require.Len(t, env.records.records, 1)

	// The derived alert was persisted before the call returned.
	require.Len(t, env.alerts.alerts, 1)
	stored := env.alerts.alerts[0]
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "hv_1", stored.HiveID)
	assert.Equal(t, models.LevelDanger, stored.Level)
	assert.Equal(t, models.OriginCamera, stored.Origin)
	assert.False(t, stored.Acknowledged)

	// And published to the connected subscriber.
	select {
	case published := <-sub:
		assert.Same(t, stored, published)
	case <-time.After(time.Second):
		t.Fatal("alert was not published on the bus")
	}
}

func TestCreateRecordLowEntryFlowRaisesWarning(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	record := &models.Record{HiveID: "hv_1", Kind: models.KindEntry, Value: 2}
	require.NoError(t, env.svc.CreateRecord(context.Background(), record))

	require.Len(t, env.alerts.alerts, 1)
	alert := env.alerts.alerts[0]
	assert.Equal(t, models.LevelWarning, alert.Level)
	assert.Equal(t, models.OriginRuleEngine, alert.Origin)
}

func TestCreateRecordBenignKindsRaiseNothing(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	benign := []*models.Record{
		{HiveID: "hv_1", Kind: models.KindEntry, Value: 8},
		{HiveID: "hv_1", Kind: models.KindExit, Value: 0},
		{HiveID: "hv_1", Kind: models.KindTemperature, Value: 34},
		{HiveID: "hv_1", Kind: models.KindHumidity, Value: 60},
	}
	for _, r := range benign {
		require.NoError(t, env.svc.CreateRecord(context.Background(), r))
	}

	assert.Len(t, env.records.records, 4)
	assert.Empty(t, env.alerts.alerts)
}

func TestCreateRecordValidation(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	err := env.svc.CreateRecord(context.Background(), &models.Record{Kind: models.KindEntry})
	assert.True(t, errors.IsValidation(err))

	err = env.svc.CreateRecord(context.Background(), &models.Record{HiveID: "hv_1"})
	assert.True(t, errors.IsValidation(err))

	err = env.svc.CreateRecord(context.Background(), &models.Record{HiveID: "hv_1", Kind: "barulho"})
	assert.True(t, errors.IsValidation(err))

	err = env.svc.CreateRecord(context.Background(), &models.Record{
		HiveID: "hv_1", Kind: models.KindEntry, Origin: "satelite",
	})
	assert.True(t, errors.IsValidation(err))

	assert.Empty(t, env.records.records)
}

func TestCreateRecordDefaultsOriginAndMetadata(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	record := &models.Record{HiveID: "hv_1", Kind: models.KindExit}
	require.NoError(t, env.svc.CreateRecord(context.Background(), record))

	assert.Equal(t, models.OriginCamera, record.Origin)
	assert.NotNil(t, record.Metadata)
}

func TestCreateRecordAlertStoreFailureDoesNotFailRecord(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	env.alerts.failure = errors.NewDatabaseError("insert failed", nil)
	sub := env.bus.Subscribe()

	record := &models.Record{HiveID: "hv_1", Kind: models.KindPredator, Value: 1}
	require.NoError(t, env.svc.CreateRecord(context.Background(), record))

	// The record survived; the alert was neither stored nor published.
	assert.Len(t, env.records.records, 1)
	assert.Empty(t, env.alerts.alerts)
	assert.Empty(t, sub)
}

func TestCreateRecordStoreFailureSurfaced(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	env.records.failure = errors.NewDatabaseError("insert failed", nil)

	err := env.svc.CreateRecord(context.Background(), &models.Record{HiveID: "hv_1", Kind: models.KindPredator})
	require.Error(t, err)
	assert.Empty(t, env.alerts.alerts)
}

func TestSimulateCameraRecord(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	record, err := env.svc.SimulateCameraRecord(context.Background(), "hv_1")
	require.NoError(t, err)

	assert.Equal(t, "hv_1", record.HiveID)
	assert.Equal(t, models.OriginCamera, record.Origin)
	assert.Contains(t, []models.RecordKind{models.KindEntry, models.KindExit, models.KindPredator}, record.Kind)
	if record.Kind == models.KindPredator {
		assert.Equal(t, float64(1), record.Value)
	} else {
		assert.GreaterOrEqual(t, record.Value, float64(0))
		assert.Less(t, record.Value, float64(10))
	}

	require.NotNil(t, record.Metadata)
	assert.Equal(t, true, record.Metadata["simulado"])
	assert.NotEmpty(t, record.Metadata["timestamp"])

	assert.Len(t, env.records.records, 1)
}

func TestSimulateCameraRecordRequiresHive(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	_, err := env.svc.SimulateCameraRecord(context.Background(), "")
	assert.True(t, errors.IsValidation(err))
}

func TestListRecordsNewestFirst(t *testing.T) {
	env := newTestEnv()
	defer env.bus.Close()

	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, env.svc.CreateRecord(context.Background(), &models.Record{
			ID: id, HiveID: "hv_1", Kind: models.KindTemperature, Value: 30,
		}))
	}

	records, err := env.svc.ListRecords(context.Background(), models.RecordFilters{HiveID: "hv_1"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].ID)
	assert.Equal(t, "first", records[2].ID)
}
