// This file contains unit tests for the BMI calculator, covering:
//   - Known reference values
//   - Category boundaries read straight from the band table
//   - Input validation (InvalidInputError)
//   - Unit conversion equivalence
package services

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlfelps/bmi-calculator/internal/models"
)

func TestCalculate_ReferenceValues(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		bmi      float64
		category models.Category
		color    string
	}{
		{"normal", 70, 1.75, 22.86, models.CategoryNormalWeight, "#32CD32"},
		{"underweight", 50, 1.80, 15.43, models.CategoryUnderweight, "#FFD700"},
		{"obese", 90, 1.70, 31.14, models.CategoryObese, "#FF4500"},
		{"overweight", 80, 1.75, 26.12, models.CategoryOverweight, "#FFA500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.weight, tt.height)
			require.NoError(t, err)
			assert.Equal(t, tt.bmi, got.BMI)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.color, got.Color)
			assert.Equal(t, Emoji(tt.category), got.Emoji)
		})
	}
}

func TestCalculate_BoundariesAreHalfOpen(t *testing.T) {
	// Each band's upper bound belongs to the next band. A height of 1 m
	// makes the BMI equal to the weight, so the bound can be hit exactly.
	for i, b := range Bands[:len(Bands)-1] {
		next := Bands[i+1]

		t.Run(string(next.Category), func(t *testing.T) {
			assert.Equal(t, next.Category, Classify(b.Upper).Category)
			assert.Equal(t, b.Category, Classify(math.Nextafter(b.Upper, 0)).Category)

			got, err := Calculate(b.Upper, 1)
			require.NoError(t, err)
			assert.Equal(t, b.Upper, got.BMI)
			assert.Equal(t, next.Category, got.Category)
		})
	}
}

func TestClassify_NamedBoundaries(t *testing.T) {
	assert.Equal(t, models.CategoryNormalWeight, Classify(18.5).Category)
	assert.Equal(t, models.CategoryOverweight, Classify(25).Category)
	assert.Equal(t, models.CategoryObese, Classify(30).Category)
	assert.Equal(t, models.CategoryUnderweight, Classify(0.01).Category)
	assert.Equal(t, models.CategoryObese, Classify(1000).Category)
}

func TestBands_OrderedAndContiguous(t *testing.T) {
	require.Len(t, Bands, 4)
	for i := 1; i < len(Bands); i++ {
		assert.Less(t, Bands[i-1].Upper, Bands[i].Upper)
		assert.True(t, Bands[i].Category.IsValid())
	}
	assert.True(t, math.IsInf(Bands[len(Bands)-1].Upper, 1))
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		height  float64
		message string
	}{
		{"zero weight", 0, 1.75, ErrNotPositive},
		{"zero height", 70, 0, ErrNotPositive},
		{"negative weight", -70, 1.75, ErrNotPositive},
		{"negative height", 70, -1.75, ErrNotPositive},
		{"both zero", 0, 0, ErrNotPositive},
		{"nan weight", math.NaN(), 1.75, ErrNotPositive},
		{"infinite height", 70, math.Inf(1), ErrNotPositive},
		{"bmi overflows", 1e300, 1e-10, ErrOutOfRange},
		{"height squared underflows", 70, 1e-200, ErrOutOfRange},
		{"rounding overflows", math.MaxFloat64, 1, ErrOutOfRange},
		{"height squared overflows", 70, 1e200, ErrOutOfRange},
		{"bmi rounds to zero", 0.1, 10, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.weight, tt.height)
			require.Error(t, err)

			var invalid *InvalidInputError
			assert.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, models.BMIResult{}, got)
		})
	}
}

func TestCalculate_AlwaysPositive(t *testing.T) {
	for _, w := range []float64{0.1, 1, 45.5, 70, 150, 300} {
		for _, h := range []float64{0.1, 0.5, 1.2, 1.75, 2.3} {
			got, err := Calculate(w, h)
			require.NoError(t, err)
			assert.Greater(t, got.BMI, 0.0)
			assert.Equal(t, Round2(w/(h*h)), got.BMI)
		}
	}
}

func TestCalculateIn_CentimetersMatchMeters(t *testing.T) {
	tests := []struct {
		cm float64
		m  float64
	}{
		{175, 1.75},
		{180, 1.80},
		{170, 1.70},
		{152, 1.52},
	}

	for _, tt := range tests {
		fromCM, err := CalculateIn(70, tt.cm, models.HeightUnitCentimeters)
		require.NoError(t, err)
		fromM, err := CalculateIn(70, tt.m, models.HeightUnitMeters)
		require.NoError(t, err)
		assert.Equal(t, fromM, fromCM)
	}
}

func TestBandFor_UnknownFallsThroughToObese(t *testing.T) {
	assert.Equal(t, "🚨", Emoji("Something else"))
	assert.Equal(t, "#FF4500", ColorOf("Something else"))
	assert.Equal(t, "🥦", Emoji(models.CategoryUnderweight))
	assert.Equal(t, "⚠️", Emoji(models.CategoryOverweight))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 22.86, Round2(22.857142857))
	assert.Equal(t, 15.43, Round2(15.432098765))
	assert.Equal(t, 18.5, Round2(18.5))
}
