package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultMETARURL is the aviationweather.gov data endpoint
const DefaultMETARURL = "https://aviationweather.gov/api/data/metar"

// ErrNoData signals that the data source has no METAR for the requested
// station. The endpoint reports this with an empty body or a sentinel
// message rather than an HTTP error.
var ErrNoData = errors.New("no METAR data available")

// Gateway fetches raw METAR reports from the remote data source
type Gateway struct {
	BaseURL string
	Client  *http.Client
}

// NewGateway returns a Gateway against the given endpoint with a
// 10-second request timeout
func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchMETAR fetches the raw METAR for a station code. A body that is
// empty or begins with "No" or "Error" means the source has no data for
// the station and maps to ErrNoData.
func (g *Gateway) FetchMETAR(stationCode string) (string, error) {
	reqURL := fmt.Sprintf("%s?ids=%s", g.BaseURL, url.QueryEscape(stationCode))

	resp, err := g.Client.Get(reqURL)
	if err != nil {
		return "", fmt.Errorf("error fetching METAR: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	data := strings.TrimSpace(string(body))
	if data == "" || strings.HasPrefix(data, "No") || strings.HasPrefix(data, "Error") {
		return "", fmt.Errorf("station %s: %w", stationCode, ErrNoData)
	}

	return data, nil
}
