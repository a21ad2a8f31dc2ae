package main

import "math"

// 16-point compass rose, clockwise from north
var compassPoints = [16]string{
	"north", "north-northeast", "northeast", "east-northeast",
	"east", "east-southeast", "southeast", "south-southeast",
	"south", "south-southwest", "southwest", "west-southwest",
	"west", "west-northwest", "northwest", "north-northwest",
}

// compassDirection maps a wind direction in degrees to one of the 16
// compass sector names. Sectors are 22.5° wide and centered on multiples
// of 22.5°, north on 0°. A value exactly on a sector boundary lands on
// the higher-index side. Expects 0-360; not revalidated.
func compassDirection(degrees float64) string {
	index := int(math.Floor((degrees+11.25)/22.5)) % 16
	return compassPoints[index]
}
