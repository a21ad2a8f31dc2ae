package main

import "fmt"

// DecodeError wraps a grammar-parser failure with decode context. The
// underlying cause stays reachable through Unwrap and in the message.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode METAR: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoder turns raw METAR strings into rendered Reports. The grammar
// parser is injected so callers can substitute their own.
type Decoder struct {
	Parse Parser
}

// NewDecoder returns a Decoder backed by the in-repo METAR parser
func NewDecoder() *Decoder {
	return &Decoder{Parse: ParseMETAR}
}

// Decode parses a raw METAR and renders the report. Detail lines follow
// a fixed order: sky, temperature, dew point, wind, visibility,
// pressure, weather phenomena; lines for absent fields are dropped.
func (d *Decoder) Decode(raw string) (*Report, error) {
	obs, err := d.Parse(raw)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	var details []string
	for _, line := range []string{
		formatSky(obs.SkyLayers),
		formatTemperature("Temperature", obs.TemperatureC),
		formatTemperature("Dew point", obs.DewPointC),
		formatWind(obs),
		formatVisibility(obs.VisibilitySM),
		formatPressure(obs.PressureMb),
		formatWeather(obs.Weather),
	} {
		if line != "" {
			details = append(details, line)
		}
	}

	reportTime := "Unknown"
	if obs.Time != nil {
		reportTime = obs.Time.Format("2006-01-02 15:04 UTC")
	}

	return &Report{
		Summary: summarize(obs),
		Details: details,
		Station: obs.Station,
		Time:    reportTime,
	}, nil
}
