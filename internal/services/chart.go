// This file builds the data behind the BMI bar chart: one bar per category
// reaching that category's bound, plus a marker at the user's BMI.
package services

import (
	"math"

	"github.com/dlfelps/bmi-calculator/internal/models"
)

// minScaleMax is the smallest value the chart's x-axis extends to.
const minScaleMax = 40.0

// BuildChart lays out the chart for a BMI value. The axis runs from 0 to the
// larger of 40 and the BMI rounded up, so the marker never leaves the chart.
func BuildChart(bmi float64) models.Chart {
	scaleMax := math.Max(minScaleMax, math.Ceil(bmi))

	bars := make([]models.ChartBar, 0, len(Bands))
	for _, b := range Bands {
		bars = append(bars, models.ChartBar{
			Label:   b.ChartLabel,
			Bound:   b.ChartBound,
			Color:   b.Color,
			Percent: Round2(b.ChartBound / scaleMax * 100),
		})
	}

	marker := math.Max(bmi, 0)
	return models.Chart{
		Bars:          bars,
		Marker:        bmi,
		MarkerPercent: Round2(marker / scaleMax * 100),
		ScaleMax:      scaleMax,
	}
}
