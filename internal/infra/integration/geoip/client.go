package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://ipapi.co/json/"

// ipapi.co rejects requests without a browser-looking user agent.
const lookupUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Fallback is the location reported whenever the upstream lookup fails.
func Fallback() Location {
	return Location{
		City:        "Tampa",
		Postal:      "33606",
		RegionCode:  "FL",
		CountryCode: "US",
	}
}

func (c *Client) Lookup(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return Location{}, err
	}
	req.Header.Set("User-Agent", lookupUserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geo lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geo lookup: status %d", resp.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return Location{}, fmt.Errorf("geo lookup decode: %w", err)
	}

	return loc, nil
}
