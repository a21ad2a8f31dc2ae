package main

import (
	"fmt"
	"strings"
)

// summarySky reduces the layer list to one category. The clear check
// runs first, then overcast, then partly cloudy: a report carrying both
// a CLR and an OVC layer reads as clear.
func summarySky(layers []SkyLayer) string {
	if len(layers) == 0 {
		return "Clear skies"
	}

	for _, layer := range layers {
		if layer.Coverage == "CLR" || layer.Coverage == "SKC" {
			return "Clear skies"
		}
	}
	for _, layer := range layers {
		if layer.Coverage == "OVC" {
			return "Overcast"
		}
	}
	for _, layer := range layers {
		if layer.Coverage == "BKN" || layer.Coverage == "SCT" {
			return "Partly cloudy"
		}
	}

	return "Few clouds"
}

// summarize composes the one-sentence summary: sky category,
// temperature, wind, then any present weather, comma-joined with a
// trailing period
func summarize(obs *Observation) string {
	parts := []string{summarySky(obs.SkyLayers)}

	if obs.TemperatureC != nil {
		parts = append(parts, fmt.Sprintf("%d°F", roundInt(CelsiusToFahrenheit(*obs.TemperatureC))))
	}

	switch {
	case obs.WindSpeedKt == nil:
		parts = append(parts, "calm winds")
	case KnotsToMPH(*obs.WindSpeedKt) < 1:
		parts = append(parts, "calm winds")
	default:
		direction := "variable direction"
		if obs.WindDirDeg != nil {
			direction = "from the " + compassDirection(float64(*obs.WindDirDeg))
		}
		parts = append(parts, fmt.Sprintf("winds %d mph %s", roundInt(KnotsToMPH(*obs.WindSpeedKt)), direction))
	}

	if len(obs.Weather) > 0 {
		var descs []string
		for _, wx := range obs.Weather {
			descs = append(descs, strings.ToLower(wx.Description))
		}
		parts = append(parts, strings.Join(descs, ", "))
	}

	return strings.Join(parts, ", ") + "."
}
