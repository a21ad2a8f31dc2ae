package main

import (
	"fmt"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color definitions using fatih/color
var (
	labelColor   = color.New(color.FgCyan)
	summaryColor = color.New(color.FgWhite, color.Bold)
	errorColor   = color.New(color.FgRed)
)

var titleCaser = cases.Title(language.English)

// processStation fetches, decodes, and prints the report for a station.
// When rawInput is non-empty (piped data) the fetch is skipped.
func processStation(gateway *Gateway, decoder *Decoder, stationCode, rawInput string, noRaw bool) {
	raw := rawInput
	if raw == "" {
		fmt.Printf("Fetching METAR for %s...\n", stationCode)
		var err error
		raw, err = gateway.FetchMETAR(stationCode)
		if err != nil {
			errorColor.Printf("Error: %v\n", err)
			return
		}
	}

	if !noRaw {
		fmt.Println("\nRaw METAR:")
		fmt.Println(raw)
	}

	report, err := decoder.Decode(raw)
	if err != nil {
		errorColor.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("\nDecoded METAR:")
	if obs, err := decoder.Parse(raw); err == nil {
		if headline := conditionsHeadline(obs.Weather); headline != "" {
			labelColor.Print("Conditions: ")
			fmt.Println(headline)
		}
	}
	printReport(report)
}

// printReport renders a Report for the terminal
func printReport(report *Report) {
	labelColor.Print("Station: ")
	fmt.Println(report.Station)

	labelColor.Print("Time: ")
	fmt.Println(report.Time)

	labelColor.Print("Summary: ")
	summaryColor.Println(report.Summary)

	for _, detail := range report.Details {
		fmt.Println("  " + detail)
	}
}

// conditionsHeadline title-cases phenomena descriptions for display,
// e.g. "light rain, mist" becomes "Light Rain, Mist"
func conditionsHeadline(phenomena []Phenomenon) string {
	if len(phenomena) == 0 {
		return ""
	}

	headline := ""
	for i, wx := range phenomena {
		if i > 0 {
			headline += ", "
		}
		headline += titleCaser.String(wx.Description)
	}
	return headline
}
