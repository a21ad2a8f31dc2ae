package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"k8s.io/utils/ptr"
)

// ParseError reports a raw METAR the grammar parser cannot interpret
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse METAR %q: %s", e.Raw, e.Reason)
}

// Parser turns a raw report string into a typed Observation. ParseMETAR
// is the in-repo implementation; any function producing the Observation
// schema can stand in for it.
type Parser func(raw string) (*Observation, error)

// parseTime parses a time string in the format "DDHHMMZ", using the
// current year and month with rollover into the previous month
func parseTime(timeStr string) (time.Time, error) {
	matches := timeRegex.FindStringSubmatch(timeStr)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
	}

	day, _ := strconv.Atoi(matches[1])
	hour, _ := strconv.Atoi(matches[2])
	minute, _ := strconv.Atoi(matches[3])

	now := time.Now().UTC()
	result := time.Date(now.Year(), now.Month(), day, hour, minute, 0, 0, time.UTC)

	// Handle month rollover
	if now.Day() < day {
		result = result.AddDate(0, -1, 0)
	}

	return result, nil
}

// parseVisibilitySM parses a statute-mile visibility token such as
// "10SM", "1/2SM", or "M1/4SM" into miles
func parseVisibilitySM(tok string) (float64, bool) {
	matches := visRegexSM.FindStringSubmatch(tok)
	if matches == nil {
		return 0, false
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}

	miles := float64(value)
	if matches[2] != "" {
		den, err := strconv.Atoi(matches[2])
		if err != nil || den == 0 {
			return 0, false
		}
		miles /= float64(den)
	}

	return miles, true
}

// describeWeather decodes a present-weather group into display text.
// Known groups come from the canned table; anything else is rebuilt
// from the individual code words, and codes with no mapping at all
// pass through verbatim.
func describeWeather(code string) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}

	rest := code
	var words []string
	vicinity := false

	switch {
	case strings.HasPrefix(rest, "+"):
		words = append(words, "heavy")
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		words = append(words, "light")
		rest = rest[1:]
	case strings.HasPrefix(rest, "VC"):
		vicinity = true
		rest = rest[2:]
	}

	for len(rest) >= 2 {
		chunk := rest[:2]
		if word, ok := weatherCodes[chunk]; ok {
			words = append(words, word)
		} else {
			words = append(words, chunk)
		}
		rest = rest[2:]
	}

	if vicinity {
		words = append(words, "in the vicinity")
	}

	if len(words) == 0 {
		return code
	}
	return strings.Join(words, " ")
}

// parseWeather parses a present-weather token into a Phenomenon
func parseWeather(tok string) (Phenomenon, bool) {
	matches := wxRegex.FindStringSubmatch(tok)
	if matches == nil || (matches[2] == "" && matches[3] == "") {
		return Phenomenon{}, false
	}
	return Phenomenon{Code: tok, Description: describeWeather(tok)}, true
}

// ParseMETAR parses a raw METAR string into an Observation. Unrecognized
// tokens in the main section are skipped; everything from RMK onward is
// ignored. Fails with a *ParseError when the report is too short or the
// station identifier is malformed.
func ParseMETAR(raw string) (*Observation, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.Fields(raw)

	// Strip a leading report-type designator
	if len(parts) > 0 && (parts[0] == "METAR" || parts[0] == "SPECI") {
		parts = parts[1:]
	}

	if len(parts) < 2 {
		return nil, &ParseError{Raw: raw, Reason: "report too short"}
	}
	if !stationRegex.MatchString(parts[0]) {
		return nil, &ParseError{Raw: raw, Reason: fmt.Sprintf("invalid station identifier %q", parts[0])}
	}

	obs := &Observation{Raw: raw, Station: parts[0]}

	for i := 1; i < len(parts); i++ {
		part := parts[i]

		// RMK and trend groups end the main section
		if part == "RMK" || part == "BECMG" || part == "TEMPO" || part == "INTER" {
			break
		}

		// Observation time
		if obs.Time == nil && timeRegex.MatchString(part) {
			if parsed, err := parseTime(part); err == nil {
				obs.Time = &parsed
			}
			continue
		}

		// Special conditions (AUTO, COR, NOSIG, ...) carry no decoded value
		if specialRegex.MatchString(part) {
			continue
		}

		// Wind, with an optional trailing variation group (e.g. "280V350")
		if matches := windRegex.FindStringSubmatch(part); matches != nil {
			speed, _ := strconv.Atoi(matches[2])
			speedKt := float64(speed)

			var gustKt *float64
			if matches[4] != "" {
				gust, _ := strconv.Atoi(matches[4])
				gustKt = ptr.To(float64(gust))
			}

			if matches[5] == "MPS" {
				speedKt = MPSToKnots(speedKt)
				if gustKt != nil {
					gustKt = ptr.To(MPSToKnots(*gustKt))
				}
			}

			obs.WindSpeedKt = ptr.To(speedKt)
			obs.WindGustKt = gustKt
			if matches[1] != "VRB" {
				dir, _ := strconv.Atoi(matches[1])
				obs.WindDirDeg = ptr.To(dir)
			}

			if i+1 < len(parts) && windVarRegex.MatchString(parts[i+1]) {
				i++
			}
			continue
		}

		// Visibility split across two tokens, e.g. "1 1/2SM"
		if i+1 < len(parts) && len(part) == 1 && strings.Contains(parts[i+1], "/") {
			if whole, err := strconv.Atoi(part); err == nil {
				if frac, ok := parseVisibilitySM(parts[i+1]); ok {
					obs.VisibilitySM = ptr.To(float64(whole) + frac)
					i++
					continue
				}
			}
		}

		// Visibility in statute miles
		if miles, ok := parseVisibilitySM(part); ok {
			obs.VisibilitySM = ptr.To(miles)
			continue
		}

		// Visibility in meters, with or without a direction suffix
		if visRegexNum.MatchString(part) {
			meters, _ := strconv.Atoi(part)
			obs.VisibilitySM = ptr.To(MetersToStatuteMiles(float64(meters)))
			continue
		}
		if matches := visRegexDir.FindStringSubmatch(part); matches != nil {
			meters, _ := strconv.Atoi(matches[1])
			obs.VisibilitySM = ptr.To(MetersToStatuteMiles(float64(meters)))
			continue
		}

		// CAVOK: visibility 10 km or more, no cloud layers reported
		if part == "CAVOK" {
			obs.VisibilitySM = ptr.To(MetersToStatuteMiles(10000))
			continue
		}

		// Vertical visibility, e.g. "VV002"
		if matches := vvRegex.FindStringSubmatch(part); matches != nil {
			height, _ := strconv.Atoi(matches[1])
			obs.SkyLayers = append(obs.SkyLayers, SkyLayer{
				Coverage: "VV",
				HeightFt: ptr.To(float64(height * 100)),
			})
			continue
		}

		// Cloud layers - check before weather phenomena
		if matches := cloudRegex.FindStringSubmatch(part); matches != nil {
			layer := SkyLayer{Coverage: matches[1]}
			if matches[2] != "" {
				height, _ := strconv.Atoi(matches[2])
				layer.HeightFt = ptr.To(float64(height * 100))
			}
			obs.SkyLayers = append(obs.SkyLayers, layer)
			continue
		}

		// Weather phenomena
		if wx, ok := parseWeather(part); ok {
			obs.Weather = append(obs.Weather, wx)
			continue
		}

		// Temperature and dew point, "M04/M17"
		if matches := tempRegex.FindStringSubmatch(part); matches != nil {
			temp, _ := strconv.Atoi(matches[2])
			if matches[1] == "M" {
				temp = -temp
			}
			obs.TemperatureC = ptr.To(float64(temp))

			dew, _ := strconv.Atoi(matches[4])
			if matches[3] == "M" {
				dew = -dew
			}
			obs.DewPointC = ptr.To(float64(dew))
			continue
		}

		// Temperature with missing dew point, "M04/"
		if matches := tempOnlyRegex.FindStringSubmatch(part); matches != nil {
			temp, _ := strconv.Atoi(matches[2])
			if matches[1] == "M" {
				temp = -temp
			}
			obs.TemperatureC = ptr.To(float64(temp))
			continue
		}

		// Altimeter setting in inches of mercury, "A3034"
		if matches := pressureRegexA.FindStringSubmatch(part); matches != nil {
			if obs.PressureMb == nil {
				hundredths, _ := strconv.Atoi(matches[1])
				obs.PressureMb = ptr.To(InHgToMillibars(float64(hundredths) / 100.0))
			}
			continue
		}

		// Pressure in millibars, "Q1013"
		if matches := pressureRegexQ.FindStringSubmatch(part); matches != nil {
			if obs.PressureMb == nil {
				mb, _ := strconv.Atoi(matches[1])
				obs.PressureMb = ptr.To(float64(mb))
			}
			continue
		}
	}

	return obs, nil
}
