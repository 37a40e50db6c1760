package properties

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"propnest-backend/internal/geocode"
	"propnest-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Square-footage conversion factors by submitted unit.
const (
	sqMToSqFt  = 10.764
	sqYdToSqFt = 9
)

type Service struct {
	DB       *gorm.DB
	Geocoder geocode.Geocoder
}

// LocationInput is the submitter-supplied location block.
type LocationInput struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// CreatePropertyInput carries normalized form fields into the service.
// Optional attributes are raw strings; blank means absent.
type CreatePropertyInput struct {
	Title            string
	Description      string
	PropertyType     string
	ListingType      string
	Price            string
	Location         LocationInput
	PropertySize     string
	PropertySizeUnit string
	Bedrooms         string
	Bathrooms        string
	Furnishing       string
	Floor            string
	Facing           string
	Age              string
	Balconies        string
	ProjectID        string
	ThumbnailURL     string
	Images           []string
	PostedByName     string
	PostedByEmail    string
	OwnerID          *uuid.UUID
}

// CreateProperty validates, normalizes and stores a new listing.
// Geocoder failures are tolerated: the Location falls back to submitted fields.
func (s *Service) CreateProperty(ctx context.Context, in CreatePropertyInput) (*models.Property, error) {
	if isBlank(in.Title) || isBlank(in.PropertyType) || isBlank(in.Price) || isBlank(in.Location.Address) {
		return nil, ErrMissingFields
	}

	var geo *geocode.Result
	if s.Geocoder != nil {
		res, err := s.Geocoder.Geocode(ctx, in.Location.Address)
		if err != nil {
			log.Warn().Err(err).Str("address", in.Location.Address).Msg("geocode failed, falling back to submitted location fields")
		} else {
			geo = res
		}
	}

	location, err := s.resolveLocation(ctx, in.Location, geo)
	if err != nil {
		return nil, err
	}

	listingType := in.ListingType
	if isBlank(listingType) {
		listingType = "sale"
	}

	details, err := buildDetails(in)
	if err != nil {
		return nil, err
	}

	var images []byte
	if len(in.Images) > 0 {
		images, _ = json.Marshal(in.Images)
	} else {
		images = []byte("[]")
	}

	property := &models.Property{
		Title:        strings.TrimSpace(in.Title),
		Description:  blankToNil(in.Description),
		PropertyType: CanonicalPropertyType(in.PropertyType),
		ListingType:  listingType,
		Status:       models.PropertyStatusActive,
		SqFt:         SquareFootage(in.PropertySize, in.PropertySizeUnit),
		PostedBy:     postedBy(in.PostedByName, in.PostedByEmail),
		OwnerID:      in.OwnerID,
		LocationID:   location.LocationID,
		ProjectID:    parseOptionalUUID(in.ProjectID),
		ThumbnailURL: blankToNil(in.ThumbnailURL),
		Details:      details,
		Images:       images,
	}
	if err := s.DB.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	property.Location = location
	return property, nil
}

// resolveLocation finds or creates the Location for a submission. Geocoded
// fields win; submitted city/state/country fill the gaps; country defaults to
// India. The coord-bucket unique index makes find-or-create safe under
// concurrent submissions: insert with ON CONFLICT DO NOTHING, then re-fetch.
func (s *Service) resolveLocation(ctx context.Context, submitted LocationInput, geo *geocode.Result) (*models.Location, error) {
	loc := models.Location{
		StreetAddress: strings.TrimSpace(submitted.Address),
		Country:       "India",
	}
	if geo != nil {
		loc.Latitude = geo.Latitude
		loc.Longitude = geo.Longitude
		loc.City = blankToNil(geo.City)
		loc.State = blankToNil(geo.State)
		loc.Zipcode = blankToNil(geo.Zipcode)
		loc.Locality = blankToNil(geo.Locality)
		loc.Neighborhood = blankToNil(geo.Neighborhood)
		loc.FormattedAddress = blankToNil(geo.FormattedAddress)
		if !isBlank(geo.Country) {
			loc.Country = strings.TrimSpace(geo.Country)
		}
		loc.CoordBucket = models.CoordBucket(geo.Latitude, geo.Longitude)
	} else {
		// No coordinates: dedup by the normalized address text instead.
		loc.CoordBucket = "addr:" + strings.ToLower(strings.Join(strings.Fields(submitted.Address), " "))
	}
	if loc.City == nil {
		loc.City = blankToNil(submitted.City)
	}
	if loc.State == nil {
		loc.State = blankToNil(submitted.State)
	}
	if geo == nil || isBlank(geo.Country) {
		if !isBlank(submitted.Country) {
			loc.Country = strings.TrimSpace(submitted.Country)
		}
	}

	var existing models.Location
	err := s.DB.WithContext(ctx).Where("coord_bucket = ?", loc.CoordBucket).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "coord_bucket"}}, DoNothing: true}).
		Create(&loc).Error; err != nil {
		return nil, err
	}
	// Re-fetch: a concurrent submission may have won the insert.
	if err := s.DB.WithContext(ctx).Where("coord_bucket = ?", loc.CoordBucket).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// buildDetails assembles the variable-attribute blob, omitting absent fields.
func buildDetails(in CreatePropertyInput) ([]byte, error) {
	details := map[string]interface{}{}
	if f, ok := parseNumber(in.Price); ok {
		details["price"] = f
	} else {
		details["price"] = strings.TrimSpace(in.Price)
	}
	setIfPresent(details, "bedrooms", in.Bedrooms)
	setIfPresent(details, "bathrooms", in.Bathrooms)
	setIfPresent(details, "furnishing", in.Furnishing)
	setIfPresent(details, "floor", in.Floor)
	setIfPresent(details, "facing", in.Facing)
	setIfPresent(details, "age", in.Age)
	setIfPresent(details, "balconies", in.Balconies)
	return json.Marshal(details)
}

func setIfPresent(m map[string]interface{}, key, val string) {
	if !isBlank(val) {
		m[key] = strings.TrimSpace(val)
	}
}

// SquareFootage derives sq_ft from size + unit. Returns nil when size is
// absent or non-numeric. sq_m ×10.764, sq_yd ×9, sq_ft unchanged.
func SquareFootage(size, unit string) *float64 {
	f, ok := parseNumber(size)
	if !ok {
		return nil
	}
	switch unit {
	case "sq_m":
		f *= sqMToSqFt
	case "sq_yd":
		f *= sqYdToSqFt
	}
	return &f
}

// CanonicalPropertyType collapses aliases to the stored enum value.
// Both land subtypes are stored as "land".
func CanonicalPropertyType(t string) string {
	t = strings.TrimSpace(strings.ToLower(t))
	switch t {
	case "plot", "residential_land":
		return "land"
	}
	return t
}

// postedBy resolves the display name: session name, then email, then Anonymous.
func postedBy(name, email string) string {
	if !isBlank(name) {
		return strings.TrimSpace(name)
	}
	if !isBlank(email) {
		return strings.TrimSpace(email)
	}
	return "Anonymous"
}

// ArchiveProperty moves an active listing to archived. Owner only.
func (s *Service) ArchiveProperty(ctx context.Context, propertyID, actorID uuid.UUID) (*models.Property, error) {
	return s.transition(ctx, propertyID, actorID, models.PropertyStatusArchived)
}

// MarkSold moves an active listing to sold. Owner only.
func (s *Service) MarkSold(ctx context.Context, propertyID, actorID uuid.UUID) (*models.Property, error) {
	return s.transition(ctx, propertyID, actorID, models.PropertyStatusSold)
}

func (s *Service) transition(ctx context.Context, propertyID, actorID uuid.UUID, status string) (*models.Property, error) {
	var property models.Property
	if err := s.DB.WithContext(ctx).Where("property_id = ?", propertyID).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if property.OwnerID == nil || *property.OwnerID != actorID {
		return nil, ErrNotOwner
	}
	if property.Status != models.PropertyStatusActive {
		return nil, ErrNotActive
	}
	if err := s.DB.WithContext(ctx).Model(&property).Update("status", status).Error; err != nil {
		return nil, err
	}
	property.Status = status
	return &property, nil
}

// --- helpers ---

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func blankToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseOptionalUUID(s string) *uuid.UUID {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return nil
	}
	return &id
}

func parseNumber(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
