package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// normalizeStationCode trims, upcases, and validates a station code
func normalizeStationCode(input string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if code == "" {
		return "", fmt.Errorf("no station code provided")
	}
	if len(code) != 4 {
		return "", fmt.Errorf("invalid station code %q: must be 4 characters", code)
	}
	return code, nil
}

// readFromStdin reads a raw METAR from stdin if data is piped in,
// returning the station code, the raw line, and whether stdin had data
func readFromStdin() (string, string, bool) {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return "", "", false
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		rawInput := scanner.Text()
		if parts := strings.Fields(rawInput); len(parts) > 0 {
			return parts[0], rawInput, true
		}
	}

	return "", "", false
}

// promptForStationCode asks the user for a station code interactively
func promptForStationCode() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter ICAO airport code (e.g., KJFK, EGLL): ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return normalizeStationCode(input)
}
