// FilePath: internal/models/api.models.input_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiveInputNormalizeDefaults(t *testing.T) {
	in := HiveInput{Identifier: "Colmeia 01", ApiaryID: "apy_1"}
	h := in.Normalize()

	assert.Equal(t, "Colmeia 01", h.Identifier)
	assert.Equal(t, "apy_1", h.ApiaryID)
	assert.Equal(t, DefaultHiveSpecies, h.Species)
	assert.Equal(t, HiveStateHealthy, h.State)
}

func TestHiveInputNormalizeAliases(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Hive
	}{
		{
			name: "portuguese names",
			body: `{"identificador":"C1","especie":"Jataí","apiario":"apy_1","estado":"atenção"}`,
			want: Hive{Identifier: "C1", Species: "Jataí", ApiaryID: "apy_1", State: HiveStateAttention},
		},
		{
			name: "english aliases",
			body: `{"identifier":"C2","species":"Mandaçaia","apiary":"apy_2"}`,
			want: Hive{Identifier: "C2", Species: "Mandaçaia", ApiaryID: "apy_2", State: HiveStateHealthy},
		},
		{
			name: "nome alias for identifier",
			body: `{"nome":"C3","apiario":"apy_3"}`,
			want: Hive{Identifier: "C3", Species: DefaultHiveSpecies, ApiaryID: "apy_3", State: HiveStateHealthy},
		},
		{
			name: "canonical name wins over alias",
			body: `{"identificador":"canonical","identifier":"alias","apiario":"apy_4"}`,
			want: Hive{Identifier: "canonical", Species: DefaultHiveSpecies, ApiaryID: "apy_4", State: HiveStateHealthy},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in HiveInput
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))
			h := in.Normalize()
			assert.Equal(t, tc.want.Identifier, h.Identifier)
			assert.Equal(t, tc.want.Species, h.Species)
			assert.Equal(t, tc.want.ApiaryID, h.ApiaryID)
			assert.Equal(t, tc.want.State, h.State)
		})
	}
}

func TestHiveInputNormalizePartialLeavesZeroFields(t *testing.T) {
	in := HiveInput{State: string(HiveStateCritical)}
	h := in.NormalizePartial()

	assert.Empty(t, h.Identifier)
	assert.Empty(t, h.Species)
	assert.Empty(t, h.ApiaryID)
	assert.Equal(t, HiveStateCritical, h.State)
}

func TestRecordInputNormalize(t *testing.T) {
	value := 4.5
	in := RecordInput{HiveID: "hv_1", Kind: "entrada", Value: &value}
	r := in.Normalize()

	assert.Equal(t, "hv_1", r.HiveID)
	assert.Equal(t, KindEntry, r.Kind)
	assert.Equal(t, 4.5, r.Value)
	assert.Equal(t, OriginManual, r.Origin)
	require.NotNil(t, r.Metadata)
	assert.Empty(t, r.Metadata)
}

func TestRecordInputNormalizeAliases(t *testing.T) {
	value := 2.0
	in := RecordInput{HiveIDAlias: "hv_2", KindAlias: "predador", ValueAlias: &value, OriginAlias: "camera"}
	r := in.Normalize()

	assert.Equal(t, "hv_2", r.HiveID)
	assert.Equal(t, KindPredator, r.Kind)
	assert.Equal(t, 2.0, r.Value)
	assert.Equal(t, OriginCamera, r.Origin)
}

func TestRecordInputNormalizeMissingValue(t *testing.T) {
	in := RecordInput{HiveID: "hv_1", Kind: "temperatura"}
	r := in.Normalize()
	assert.Zero(t, r.Value)
}

func TestValidKind(t *testing.T) {
	for _, k := range []RecordKind{KindEntry, KindExit, KindPredator, KindTemperature, KindHumidity} {
		assert.True(t, ValidKind(k), string(k))
	}
	assert.False(t, ValidKind("barulho"))
	assert.False(t, ValidKind(""))
}

func TestValidOrigin(t *testing.T) {
	assert.True(t, ValidOrigin(OriginCamera))
	assert.True(t, ValidOrigin(OriginManual))
	assert.False(t, ValidOrigin("satelite"))
	assert.False(t, ValidOrigin(""))
}

func TestValidState(t *testing.T) {
	for _, s := range []HiveState{HiveStateHealthy, HiveStateAttention, HiveStateCritical} {
		assert.True(t, ValidState(s), string(s))
	}
	assert.False(t, ValidState("ok"))
}

func TestJSONValueNilIsEmptyObject(t *testing.T) {
	var j JSON
	v, err := j.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)
}
