package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalNumber(t *testing.T) {
	var payload struct {
		Code FlexInt `json:"code"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"code": 4}`), &payload))
	assert.Equal(t, 4, payload.Code.Int())
}

func TestFlexInt_UnmarshalNumeralString(t *testing.T) {
	var payload struct {
		Code FlexInt `json:"code"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"code": "4"}`), &payload))
	assert.Equal(t, 4, payload.Code.Int())
}

func TestFlexInt_RejectsNonNumeral(t *testing.T) {
	var value FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"book"`), &value))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &value))
}

func TestFlexInt_MarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(FlexInt(2))
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))
}
