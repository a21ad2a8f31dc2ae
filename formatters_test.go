package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"
)

func TestFormatSky(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sky condition: Clear", formatSky(nil))

	layers := []SkyLayer{
		{Coverage: "FEW", HeightFt: ptr.To(25000.0)},
		{Coverage: "OVC"},
	}
	assert.Equal(t, "Sky: Few clouds at 25000 feet, Overcast", formatSky(layers))

	// Unrecognized coverage codes pass through verbatim
	assert.Equal(t, "Sky: XYZ at 1200 feet", formatSky([]SkyLayer{{Coverage: "XYZ", HeightFt: ptr.To(1200.0)}}))

	assert.Equal(t, "Sky: Vertical visibility at 400 feet", formatSky([]SkyLayer{{Coverage: "VV", HeightFt: ptr.To(400.0)}}))
}

func TestFormatTemperature(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Temperature: 32°F (0°C)", formatTemperature("Temperature", ptr.To(0.0)))
	assert.Equal(t, "Temperature: 25°F (-4°C)", formatTemperature("Temperature", ptr.To(-4.0)))
	assert.Equal(t, "Dew point: 1°F (-17°C)", formatTemperature("Dew point", ptr.To(-17.0)))
	assert.Empty(t, formatTemperature("Temperature", nil))
}

func TestFormatWind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Wind: Calm", formatWind(&Observation{}))

	// Below one knot reads calm even with direction and gust data
	assert.Equal(t, "Wind: Calm", formatWind(&Observation{
		WindSpeedKt: ptr.To(0.5),
		WindDirDeg:  ptr.To(310),
		WindGustKt:  ptr.To(15.0),
	}))
	assert.Equal(t, "Wind: Calm", formatWind(&Observation{WindSpeedKt: ptr.To(0.0), WindDirDeg: ptr.To(0)}))

	assert.Equal(t, "Wind: 9 mph (8 knots) from the northwest", formatWind(&Observation{
		WindSpeedKt: ptr.To(8.0),
		WindDirDeg:  ptr.To(310),
	}))

	assert.Equal(t, "Wind: 6 mph (5 knots) from the variable", formatWind(&Observation{
		WindSpeedKt: ptr.To(5.0),
	}))

	assert.Equal(t,
		"Wind: 21 mph (18 knots) from the north-northwest, gusting to 31 mph (27 knots)",
		formatWind(&Observation{
			WindSpeedKt: ptr.To(18.0),
			WindGustKt:  ptr.To(27.0),
			WindDirDeg:  ptr.To(330),
		}))
}

func TestFormatVisibility(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Visibility: 10+ miles (excellent)", formatVisibility(ptr.To(10.0)))
	assert.Equal(t, "Visibility: 15+ miles (excellent)", formatVisibility(ptr.To(15.0)))
	assert.Equal(t, "Visibility: 10.0 miles", formatVisibility(ptr.To(9.99)))
	assert.Equal(t, "Visibility: 2.5 miles", formatVisibility(ptr.To(2.5)))
	assert.Empty(t, formatVisibility(nil))
}

func TestFormatPressure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pressure: 30.34 inHg (1027 mb)", formatPressure(ptr.To(InHgToMillibars(30.34))))
	assert.Equal(t, "Pressure: 29.92 inHg (1013 mb)", formatPressure(ptr.To(1013.25)))
	assert.Empty(t, formatPressure(nil))
}

func TestFormatWeather(t *testing.T) {
	t.Parallel()

	assert.Empty(t, formatWeather(nil))

	phenomena := []Phenomenon{
		{Code: "-RA", Description: "light rain"},
		{Code: "BR", Description: "mist"},
	}
	assert.Equal(t, "Weather: light rain, mist", formatWeather(phenomena))
}
