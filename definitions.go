package main

import (
	"regexp"
	"time"
)

// Weather phenomenon code words used to build descriptions for
// combinations that have no canned entry in weatherDescriptions
var weatherCodes = map[string]string{
	"MI": "shallow",
	"PR": "partial",
	"BC": "patches",
	"DR": "low drifting",
	"BL": "blowing",
	"SH": "showers",
	"TS": "thunderstorm",
	"FZ": "freezing",
	"DZ": "drizzle",
	"RA": "rain",
	"SN": "snow",
	"SG": "snow grains",
	"IC": "ice crystals",
	"PL": "ice pellets",
	"GR": "hail",
	"GS": "small hail",
	"UP": "unknown precipitation",
	"BR": "mist",
	"FG": "fog",
	"FU": "smoke",
	"VA": "volcanic ash",
	"DU": "widespread dust",
	"SA": "sand",
	"HZ": "haze",
	"PY": "spray",
	"PO": "dust whirls",
	"SQ": "squalls",
	"FC": "funnel cloud",
	"SS": "sandstorm",
	"DS": "duststorm",
}

// Canned descriptions for common weather groups
var weatherDescriptions = map[string]string{
	// Basic codes
	"BR":   "mist",
	"FG":   "fog",
	"-RA":  "light rain",
	"RA":   "rain",
	"+RA":  "heavy rain",
	"-SN":  "light snow",
	"SN":   "snow",
	"+SN":  "heavy snow",
	"VCSH": "showers in vicinity",
	"VCTS": "thunderstorm in vicinity",
	"TS":   "thunderstorm",
	"TSRA": "thunderstorm with rain",
	"DZ":   "drizzle",
	"-DZ":  "light drizzle",
	"+DZ":  "heavy drizzle",

	// Composite codes - showers
	"-SHRA": "light rain showers",
	"SHRA":  "rain showers",
	"+SHRA": "heavy rain showers",
	"-SHSN": "light snow showers",
	"SHSN":  "snow showers",
	"+SHSN": "heavy snow showers",
	"SHGR":  "hail showers",
	"-SHGR": "light hail showers",
	"+SHGR": "heavy hail showers",

	// Thunderstorms
	"+TS":   "heavy thunderstorm",
	"-TS":   "light thunderstorm",
	"-TSRA": "light thunderstorm with rain",
	"+TSRA": "heavy thunderstorm with rain",
	"TSSN":  "thunderstorm with snow",
	"-TSSN": "light thunderstorm with snow",
	"+TSSN": "heavy thunderstorm with snow",
	"TSGR":  "thunderstorm with hail",
	"+TSGR": "heavy thunderstorm with hail",

	// Freezing precipitation
	"FZRA":  "freezing rain",
	"-FZRA": "light freezing rain",
	"+FZRA": "heavy freezing rain",
	"FZDZ":  "freezing drizzle",
	"-FZDZ": "light freezing drizzle",
	"+FZDZ": "heavy freezing drizzle",
	"FZFG":  "freezing fog",

	// Blowing and drifting
	"BLSN": "blowing snow",
	"DRSN": "drifting snow",
	"BLDU": "blowing dust",
	"BLSA": "blowing sand",

	// Vicinity phenomena
	"VCFG": "fog in vicinity",
	"VCFC": "funnel cloud in vicinity",

	// Other combinations
	"MIFG": "shallow fog",
	"BCFG": "patches of fog",
	"PRFG": "partial fog",
	"FC":   "funnel cloud",
	"+FC":  "tornado/waterspout",
}

// Sky coverage codes mapped to display text. Codes outside this table
// pass through verbatim.
var skyCoverage = map[string]string{
	"CLR": "Clear",
	"SKC": "Clear",
	"FEW": "Few clouds",
	"SCT": "Scattered clouds",
	"BKN": "Broken clouds",
	"OVC": "Overcast",
	"VV":  "Vertical visibility",
}

// Commonly used regular expressions
var (
	stationRegex   = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)
	timeRegex      = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	windRegex      = regexp.MustCompile(`^(VRB|\d{3})(\d{2,3})(G(\d{2,3}))?(KT|MPS)$`)
	windVarRegex   = regexp.MustCompile(`^(\d{3})V(\d{3})$`)
	visRegexSM     = regexp.MustCompile(`^M?(\d+)(?:/(\d+))?SM$`)
	visRegexNum    = regexp.MustCompile(`^\d{4}$`)
	visRegexDir    = regexp.MustCompile(`^(\d{4})([NESW]{1,2})$`)
	cloudRegex     = regexp.MustCompile(`^(SKC|CLR|FEW|SCT|BKN|OVC)(\d{3})?(CB|TCU)?$`)
	vvRegex        = regexp.MustCompile(`^VV(\d{3})$`)
	tempRegex      = regexp.MustCompile(`^(M?)(\d{2})/(M?)(\d{2})$`)
	tempOnlyRegex  = regexp.MustCompile(`^(M?)(\d{2})/$`)
	pressureRegexA = regexp.MustCompile(`^A(\d{4})$`)
	pressureRegexQ = regexp.MustCompile(`^Q(\d{4})$`)
	wxRegex        = regexp.MustCompile(`^([+-]|VC)?(MI|PR|BC|DR|BL|SH|TS|FZ)?((?:DZ|RA|SN|SG|IC|PL|GR|GS|UP|BR|FG|FU|VA|DU|SA|HZ|PY|PO|SQ|FC|SS|DS)+)?$`)
	specialRegex   = regexp.MustCompile(`^(NOSIG|AUTO|COR|CCA|NSC|NCD|RTD)$`)
)

// SkyLayer represents one reported cloud layer
type SkyLayer struct {
	Coverage string
	HeightFt *float64
}

// Phenomenon represents one present-weather group with its decoded description
type Phenomenon struct {
	Code        string
	Description string
}

// Observation is the typed result of parsing a raw METAR. Optional
// fields are pointers; nil means the report did not carry the value.
type Observation struct {
	Raw          string
	Station      string
	Time         *time.Time
	TemperatureC *float64
	DewPointC    *float64
	WindDirDeg   *int // nil for variable or absent direction
	WindSpeedKt  *float64
	WindGustKt   *float64
	VisibilitySM *float64
	PressureMb   *float64
	SkyLayers    []SkyLayer
	Weather      []Phenomenon
}

// Report is the rendered weather report returned to callers
type Report struct {
	Summary string   `json:"summary"`
	Details []string `json:"details"`
	Station string   `json:"station"`
	Time    string   `json:"time"`
}
