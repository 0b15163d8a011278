package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/ce/api/catalog"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := map[string]float64{
		"23450":    234.5,
		" 100 ":    1,
		"234,50":   234.5,
		"1.234,50": 1234.5,
		"12.5":     125,
		"":         0,
		"abc":      0,
		"Infinity": 0,
		"NaN":      0,
		"-3,5":     -3.5,
	}

	for in, expected := range tests {
		assert.InDelta(t, expected, catalog.NormalizePrice(in), 1e-9, in)
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	var out struct {
		A catalog.Price `json:"a"`
		B catalog.Price `json:"b"`
		C catalog.Price `json:"c"`
	}

	assert.NoError(t, json.Unmarshal([]byte(`{"a": 99.9, "b": "1.500,00", "c": null}`), &out))
	assert.InDelta(t, 99.9, out.A.Float(), 1e-9)
	assert.InDelta(t, 1500, out.B.Float(), 1e-9)
	assert.Equal(t, catalog.Price(0), out.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &out))
}

func TestFormatBRL(t *testing.T) {
	tests := map[float64]string{
		0:          "R$ 0,00",
		1234.5:     "R$ 1.234,50",
		999.999:    "R$ 1.000,00",
		12:         "R$ 12,00",
		1234567.89: "R$ 1.234.567,89",
		-5.1:       "-R$ 5,10",
		0.05:       "R$ 0,05",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, catalog.FormatBRL(in), "%v", in)
	}
}
