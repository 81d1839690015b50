package main

import (
	"bytes"
	"testing"

	"github.com/jward/circle"
	"github.com/stretchr/testify/assert"
)

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}

func TestFormatMeasurementText_AreaOnly(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatMeasurementText(&buf, circle.Measure(2.54), false)
	assert.Equal(t, "Circle's area is 3.14 (sq in).\n", buf.String())
}

func TestFormatMeasurementText_WithCircumference(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatMeasurementText(&buf, circle.Measure(2.54), true)
	assert.Equal(t,
		"Circle's area is 3.14 (sq in).\nIts circumference is 6.28 (in).\n",
		buf.String())
}

func TestFormatMeasurementText_Rounding(t *testing.T) {
	t.Parallel()
	// 5.08 cm is a two-inch radius: area and circumference both 12.56636.
	var buf bytes.Buffer
	formatMeasurementText(&buf, circle.Measure(5.08), true)
	assert.Equal(t,
		"Circle's area is 12.57 (sq in).\nIts circumference is 12.57 (in).\n",
		buf.String())
}

func TestMeasurementToCLI(t *testing.T) {
	t.Parallel()
	m := circle.Measure(5.08)
	got := measurementToCLI(m)
	assert.Equal(t, m.RadiusCm, got.RadiusCm)
	assert.Equal(t, m.RadiusIn, got.RadiusIn)
	assert.Equal(t, m.Area, got.AreaSqIn)
	assert.Equal(t, m.Circumference, got.CircumferenceIn)
}
