package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result is the projection of a geocoder hit used for Location rows.
type Result struct {
	Latitude         float64
	Longitude        float64
	City             string
	State            string
	Country          string
	Zipcode          string
	Locality         string
	Neighborhood     string
	FormattedAddress string
}

// Geocoder resolves a free-text address to coordinates and administrative fields.
// Nil-safe callers should treat an error as "no geocode" and fall back.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

// ErrNoMatch is returned when the service finds no candidate for the address.
var ErrNoMatch = errors.New("geocode: no match for address")

// HTTPClient calls a Nominatim-compatible forward-geocoding endpoint
// (GET {base}/search?q=...&format=json&api_key=...).
type HTTPClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

type searchHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		State         string `json:"state"`
		Country       string `json:"country"`
		Postcode      string `json:"postcode"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
	} `json:"address"`
}

func (c *HTTPClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (c *HTTPClient) Geocode(ctx context.Context, address string) (*Result, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", "1")
	if c.APIKey != "" {
		q.Set("api_key", c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: service returned %d", resp.StatusCode)
	}

	var hits []searchHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, ErrNoMatch
	}
	hit := hits[0]

	lat, err := strconv.ParseFloat(hit.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q", hit.Lat)
	}
	lng, err := strconv.ParseFloat(hit.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q", hit.Lon)
	}

	city := hit.Address.City
	if city == "" {
		city = hit.Address.Town
	}
	if city == "" {
		city = hit.Address.Village
	}

	return &Result{
		Latitude:         lat,
		Longitude:        lng,
		City:             city,
		State:            hit.Address.State,
		Country:          hit.Address.Country,
		Zipcode:          hit.Address.Postcode,
		Locality:         hit.Address.Suburb,
		Neighborhood:     hit.Address.Neighbourhood,
		FormattedAddress: hit.DisplayName,
	}, nil
}
