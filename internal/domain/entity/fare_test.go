package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFareValue_StringShape(t *testing.T) {
	var f FareValue
	require.NoError(t, json.Unmarshal([]byte(`"2.10"`), &f))

	assert.Equal(t, FareScalar, f.Kind())
	assert.Equal(t, "2.10", f.Render())

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2.10"`, string(out))
}

func TestFareValue_NumberShape(t *testing.T) {
	var f FareValue
	require.NoError(t, json.Unmarshal([]byte(`1.55`), &f))

	assert.Equal(t, FareScalar, f.Kind())
	assert.Equal(t, "1.55", f.Render())

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `1.55`, string(out))
}

func TestFareValue_StructuredShape(t *testing.T) {
	payload := `{"adult": 1.2, "currency": "SGD"}`

	var f FareValue
	require.NoError(t, json.Unmarshal([]byte(payload), &f))

	assert.Equal(t, FareStructured, f.Kind())
	assert.JSONEq(t, payload, f.Render())

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestFareValue_AbsentAndUnknownShapes(t *testing.T) {
	var absent FareValue
	require.NoError(t, json.Unmarshal([]byte(`null`), &absent))
	assert.Equal(t, FareAbsent, absent.Kind())
	assert.Equal(t, "not available", absent.Render())

	out, err := json.Marshal(absent)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))

	var array FareValue
	require.NoError(t, json.Unmarshal([]byte(`[1, 2]`), &array))
	assert.Equal(t, FareAbsent, array.Kind())
	assert.Equal(t, "not available", array.Render())

	// Unknown shapes still marshal verbatim.
	out, err = json.Marshal(array)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2]`, string(out))
}

func TestFareValue_InStruct(t *testing.T) {
	type wrapper struct {
		Fare FareValue `json:"fare"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{}`), &w))
	assert.Equal(t, FareAbsent, w.Fare.Kind())
	assert.Equal(t, "not available", w.Fare.Render())
}
