package main

import "math"

// CelsiusToFahrenheit converts temperature from Celsius to Fahrenheit
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// KnotsToMPH converts speed from knots to statute miles per hour
func KnotsToMPH(knots float64) float64 {
	return knots * 1.15078
}

// MPSToKnots converts speed from meters per second to knots
func MPSToKnots(mps float64) float64 {
	return mps * 1.9438445
}

// MillibarsToInHg converts pressure from millibars (hPa) to inches of mercury
func MillibarsToInHg(mb float64) float64 {
	return mb * 0.02953
}

// InHgToMillibars converts pressure from inches of mercury to millibars (hPa)
func InHgToMillibars(inHg float64) float64 {
	return inHg * 33.8639
}

// MetersToStatuteMiles converts distance from meters to statute miles
func MetersToStatuteMiles(meters float64) float64 {
	return meters / 1609.344
}

// roundInt rounds half away from zero: 0.5 becomes 1, -0.5 becomes -1.
// Every integer rendering in the report uses this policy.
func roundInt(v float64) int {
	return int(math.Round(v))
}
