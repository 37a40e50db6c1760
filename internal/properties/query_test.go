package properties

import (
	"context"
	"encoding/json"
	"testing"

	"propnest-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProperty(t *testing.T, svc *Service, title, propertyType, status string, details map[string]interface{}, loc *models.Location) models.Property {
	t.Helper()
	blob, err := json.Marshal(details)
	require.NoError(t, err)
	p := models.Property{
		Title:        title,
		PropertyType: propertyType,
		ListingType:  "sale",
		Status:       status,
		PostedBy:     "Seeder",
		LocationID:   loc.LocationID,
		Details:      blob,
		Images:       []byte("[]"),
	}
	require.NoError(t, svc.DB.Create(&p).Error)
	return p
}

func seedLocation(t *testing.T, svc *Service, city, zipcode string, lat, lng float64) *models.Location {
	t.Helper()
	loc := models.Location{
		StreetAddress: "Test Street",
		City:          &city,
		Zipcode:       &zipcode,
		Country:       "India",
		Latitude:      lat,
		Longitude:     lng,
	}
	require.NoError(t, svc.DB.Create(&loc).Error)
	return &loc
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 1, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	p = NewPagination(25, 2, 10)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	p = NewPagination(25, 3, 10)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	p = NewPagination(0, 1, 12)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	// Out-of-range inputs snap to defaults.
	p = NewPagination(5, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 12, p.Limit)
}

func TestListProperties_ActiveOnly(t *testing.T) {
	svc := setupPropertiesTest(t, nil)
	loc := seedLocation(t, svc, "Bengaluru", "560038", 12.97, 77.64)

	seedProperty(t, svc, "Active", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 100.0}, loc)
	seedProperty(t, svc, "Archived", "apartment", models.PropertyStatusArchived, map[string]interface{}{"price": 100.0}, loc)
	seedProperty(t, svc, "Sold", "apartment", models.PropertyStatusSold, map[string]interface{}{"price": 100.0}, loc)

	results, pagination, err := svc.ListProperties(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Active", results[0].Title)
	assert.Equal(t, int64(1), pagination.TotalCount)
}

func TestListProperties_PropertyTypeAlias(t *testing.T) {
	svc := setupPropertiesTest(t, nil)
	loc := seedLocation(t, svc, "Pune", "411001", 18.52, 73.85)

	seedProperty(t, svc, "Plot listing", "land", models.PropertyStatusActive, map[string]interface{}{"price": 100.0}, loc)
	seedProperty(t, svc, "Flat", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 100.0}, loc)

	// "plot" and "residential_land" both query the stored "land" value.
	results, _, err := svc.ListProperties(context.Background(), ListQuery{PropertyType: "plot"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Plot listing", results[0].Title)

	results, _, err = svc.ListProperties(context.Background(), ListQuery{PropertyType: "residential_land"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestListProperties_LocationTextSearch(t *testing.T) {
	svc := setupPropertiesTest(t, nil)
	blr := seedLocation(t, svc, "Bengaluru", "560038", 12.97, 77.64)
	pune := seedLocation(t, svc, "Pune", "411001", 18.52, 73.85)

	seedProperty(t, svc, "In Bengaluru", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 1.0}, blr)
	seedProperty(t, svc, "In Pune", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 1.0}, pune)

	results, _, err := svc.ListProperties(context.Background(), ListQuery{Location: "bengal"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "In Bengaluru", results[0].Title)

	results, _, err = svc.ListProperties(context.Background(), ListQuery{Zipcode: "411001"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "In Pune", results[0].Title)
}

func TestListProperties_BedroomsFilter(t *testing.T) {
	svc := setupPropertiesTest(t, nil)
	loc := seedLocation(t, svc, "Bengaluru", "560038", 12.97, 77.64)

	seedProperty(t, svc, "Two bed", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 1.0, "bedrooms": "2"}, loc)
	seedProperty(t, svc, "Three bed", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 1.0, "bedrooms": "3"}, loc)
	seedProperty(t, svc, "No bed info", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 1.0}, loc)

	results, _, err := svc.ListProperties(context.Background(), ListQuery{Bedrooms: "2"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Two bed", results[0].Title)
}

func TestListProperties_PriceSortMissingLast(t *testing.T) {
	svc := setupPropertiesTest(t, nil)
	loc := seedLocation(t, svc, "Bengaluru", "560038", 12.97, 77.64)

	seedProperty(t, svc, "Mid", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 500.0}, loc)
	seedProperty(t, svc, "Cheap", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 100.0}, loc)
	seedProperty(t, svc, "Priceless", "apartment", models.PropertyStatusActive, map[string]interface{}{}, loc)
	seedProperty(t, svc, "Expensive", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": 900.0}, loc)

	results, _, err := svc.ListProperties(context.Background(), ListQuery{SortBy: "price_low_high"})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "Cheap", results[0].Title)
	assert.Equal(t, "Mid", results[1].Title)
	assert.Equal(t, "Expensive", results[2].Title)
	assert.Equal(t, "Priceless", results[3].Title)

	results, _, err = svc.ListProperties(context.Background(), ListQuery{SortBy: "price_high_low"})
	require.NoError(t, err)
	assert.Equal(t, "Expensive", results[0].Title)
	assert.Equal(t, "Priceless", results[3].Title)
}

func TestListProperties_PriceSortPagination(t *testing.T) {
	svc := setupPropertiesTest(t, nil)
	loc := seedLocation(t, svc, "Bengaluru", "560038", 12.97, 77.64)

	for i := 1; i <= 5; i++ {
		seedProperty(t, svc, "P", "apartment", models.PropertyStatusActive, map[string]interface{}{"price": float64(i * 100)}, loc)
	}

	results, pagination, err := svc.ListProperties(context.Background(), ListQuery{SortBy: "price_low_high", Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(5), pagination.TotalCount)
	assert.Equal(t, 3, pagination.TotalPages)

	p0, ok := detailsPrice(results[0])
	require.True(t, ok)
	assert.Equal(t, float64(300), p0)
}

func TestDetailsPrice_NumericString(t *testing.T) {
	p := models.Property{Details: []byte(`{"price":"4500"}`)}
	v, ok := detailsPrice(p)
	require.True(t, ok)
	assert.Equal(t, float64(4500), v)

	p = models.Property{Details: []byte(`{"price":"negotiable"}`)}
	_, ok = detailsPrice(p)
	assert.False(t, ok)

	p = models.Property{}
	_, ok = detailsPrice(p)
	assert.False(t, ok)
}
