package properties

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"propnest-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 12
)

// ListQuery holds the query-string filters for the listing search.
type ListQuery struct {
	PropertyType string
	ListingType  string
	Location     string
	Zipcode      string
	Bedrooms     string
	Bathrooms    string
	SortBy       string
	Page         int
	Limit        int
}

// Pagination is the page math returned alongside results.
type Pagination struct {
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes page bounds from a total count.
func NewPagination(totalCount int64, page, limit int) Pagination {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return Pagination{
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		Page:        page,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// ListProperties runs the listing search: active-only, optional filters,
// sort and pagination. Price sorts happen in memory because price lives in
// the details blob, not an indexed column.
func (s *Service) ListProperties(ctx context.Context, q ListQuery) ([]models.Property, Pagination, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	tx := s.filterQuery(ctx, q)

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}
	pagination := NewPagination(total, q.Page, q.Limit)
	skip := (q.Page - 1) * q.Limit

	var results []models.Property
	switch q.SortBy {
	case "price_low_high", "price_high_low":
		// Fetch the full matching set, order by blob price in memory, then page.
		if err := tx.Order(`"Properties".created_at DESC`).Find(&results).Error; err != nil {
			return nil, Pagination{}, err
		}
		sortByPrice(results, q.SortBy == "price_high_low")
		results = pageSlice(results, skip, q.Limit)
	default:
		order := `"Properties".created_at DESC`
		if q.SortBy == "oldest" {
			order = `"Properties".created_at ASC`
		}
		if err := tx.Order(order).Offset(skip).Limit(q.Limit).Find(&results).Error; err != nil {
			return nil, Pagination{}, err
		}
	}
	return results, pagination, nil
}

// filterQuery builds the shared filter predicate for list + count.
func (s *Service) filterQuery(ctx context.Context, q ListQuery) *gorm.DB {
	tx := s.DB.WithContext(ctx).Model(&models.Property{}).
		Joins("Location").
		Where(`"Properties".status = ?`, models.PropertyStatusActive)

	if q.PropertyType != "" {
		tx = tx.Where(`"Properties".property_type = ?`, CanonicalPropertyType(q.PropertyType))
	}
	if q.ListingType != "" {
		tx = tx.Where(`"Properties".listing_type = ?`, q.ListingType)
	}
	if q.Location != "" {
		pattern := "%" + strings.ToLower(q.Location) + "%"
		tx = tx.Where(
			`LOWER("Location".street_address) LIKE ? OR LOWER("Location".city) LIKE ? OR LOWER("Location".state) LIKE ? OR LOWER("Location".locality) LIKE ? OR LOWER("Location".neighborhood) LIKE ? OR LOWER("Location".zipcode) LIKE ? OR LOWER("Location".formatted_address) LIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}
	if q.Zipcode != "" {
		tx = tx.Where(`"Location".zipcode = ?`, q.Zipcode)
	}
	// bedrooms/bathrooms are exact string matches against the details blob.
	if q.Bedrooms != "" {
		tx = tx.Where(datatypes.JSONQuery("details").Equals(q.Bedrooms, "bedrooms"))
	}
	if q.Bathrooms != "" {
		tx = tx.Where(datatypes.JSONQuery("details").Equals(q.Bathrooms, "bathrooms"))
	}
	return tx
}

// sortByPrice orders by the blob's price; rows without a usable price sort last.
func sortByPrice(list []models.Property, descending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		pi, oki := detailsPrice(list[i])
		pj, okj := detailsPrice(list[j])
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		if descending {
			return pi > pj
		}
		return pi < pj
	})
}

// detailsPrice reads price out of the details blob; ok is false when the
// field is missing or not numeric.
func detailsPrice(p models.Property) (float64, bool) {
	if len(p.Details) == 0 {
		return 0, false
	}
	var details map[string]interface{}
	if err := json.Unmarshal(p.Details, &details); err != nil {
		return 0, false
	}
	switch v := details["price"].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func pageSlice(list []models.Property, skip, limit int) []models.Property {
	if skip >= len(list) {
		return []models.Property{}
	}
	end := skip + limit
	if end > len(list) {
		end = len(list)
	}
	return list[skip:end]
}
