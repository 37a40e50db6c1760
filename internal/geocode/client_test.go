package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode_ParsesHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MG Road Bengaluru", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"lat": "12.9752",
			"lon": "77.6057",
			"display_name": "MG Road, Bengaluru, Karnataka, 560001, India",
			"address": {
				"city": "Bengaluru",
				"state": "Karnataka",
				"country": "India",
				"postcode": "560001",
				"suburb": "Shivaji Nagar"
			}
		}]`))
	}))
	defer srv.Close()

	c := &HTTPClient{BaseURL: srv.URL}
	res, err := c.Geocode(context.Background(), "MG Road Bengaluru")
	require.NoError(t, err)
	assert.InDelta(t, 12.9752, res.Latitude, 1e-9)
	assert.InDelta(t, 77.6057, res.Longitude, 1e-9)
	assert.Equal(t, "Bengaluru", res.City)
	assert.Equal(t, "Karnataka", res.State)
	assert.Equal(t, "India", res.Country)
	assert.Equal(t, "560001", res.Zipcode)
	assert.Equal(t, "Shivaji Nagar", res.Locality)
	assert.Equal(t, "MG Road, Bengaluru, Karnataka, 560001, India", res.FormattedAddress)
}

func TestGeocode_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := &HTTPClient{BaseURL: srv.URL}
	_, err := c.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestGeocode_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &HTTPClient{BaseURL: srv.URL}
	_, err := c.Geocode(context.Background(), "MG Road")
	assert.Error(t, err)
}

func TestGeocode_TownFallsBackToCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"9.9","lon":"76.2","display_name":"Aluva, Kerala","address":{"town":"Aluva","state":"Kerala","country":"India"}}]`))
	}))
	defer srv.Close()

	c := &HTTPClient{BaseURL: srv.URL}
	res, err := c.Geocode(context.Background(), "Aluva")
	require.NoError(t, err)
	assert.Equal(t, "Aluva", res.City)
}
