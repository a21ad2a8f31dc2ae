package main

import (
	"fmt"
	"strings"
)

// Each formatter renders one decoded field as a detail line. An empty
// string means the observation does not carry the field and no line is
// emitted; formatSky is the exception since an empty layer list still
// reports a clear sky.

// formatSky renders the cloud layers in report order
func formatSky(layers []SkyLayer) string {
	if len(layers) == 0 {
		return "Sky condition: Clear"
	}

	var conditions []string
	for _, layer := range layers {
		desc := layer.Coverage
		if d, ok := skyCoverage[layer.Coverage]; ok {
			desc = d
		}

		if layer.HeightFt != nil {
			conditions = append(conditions, fmt.Sprintf("%s at %d feet", desc, roundInt(*layer.HeightFt)))
		} else {
			conditions = append(conditions, desc)
		}
	}

	return "Sky: " + strings.Join(conditions, ", ")
}

// formatTemperature renders a Celsius value in both scales under the
// given label ("Temperature" or "Dew point")
func formatTemperature(label string, celsius *float64) string {
	if celsius == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d°F (%d°C)", label, roundInt(CelsiusToFahrenheit(*celsius)), roundInt(*celsius))
}

// formatWind renders speed, direction, and gusts. Speeds below one knot
// read as calm regardless of any direction or gust data.
func formatWind(obs *Observation) string {
	if obs.WindSpeedKt == nil {
		return "Wind: Calm"
	}

	knots := *obs.WindSpeedKt
	if knots < 1 {
		return "Wind: Calm"
	}

	direction := "variable"
	if obs.WindDirDeg != nil {
		direction = compassDirection(float64(*obs.WindDirDeg))
	}

	text := fmt.Sprintf("Wind: %d mph (%d knots) from the %s",
		roundInt(KnotsToMPH(knots)), roundInt(knots), direction)

	if obs.WindGustKt != nil {
		text += fmt.Sprintf(", gusting to %d mph (%d knots)",
			roundInt(KnotsToMPH(*obs.WindGustKt)), roundInt(*obs.WindGustKt))
	}

	return text
}

// formatVisibility renders statute-mile visibility; 10 miles and up
// reads as excellent
func formatVisibility(miles *float64) string {
	if miles == nil {
		return ""
	}
	if *miles >= 10 {
		return fmt.Sprintf("Visibility: %d+ miles (excellent)", roundInt(*miles))
	}
	return fmt.Sprintf("Visibility: %.1f miles", *miles)
}

// formatPressure renders pressure in inches of mercury with the
// millibar value alongside
func formatPressure(mb *float64) string {
	if mb == nil {
		return ""
	}
	return fmt.Sprintf("Pressure: %.2f inHg (%d mb)", MillibarsToInHg(*mb), roundInt(*mb))
}

// formatWeather joins the present-weather descriptions
func formatWeather(phenomena []Phenomenon) string {
	if len(phenomena) == 0 {
		return ""
	}

	var descs []string
	for _, wx := range phenomena {
		descs = append(descs, wx.Description)
	}

	return "Weather: " + strings.Join(descs, ", ")
}
