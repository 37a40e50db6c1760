package properties

import (
	"encoding/json"
	"time"

	"propnest-backend/internal/models"
)

// PropertyView is the flat listing shape returned to clients. Absent values
// are null across the board; counts default to zero.
type PropertyView struct {
	PropertyID       string   `json:"propertyId"`
	Title            string   `json:"title"`
	Description      *string  `json:"description"`
	PropertyType     string   `json:"propertyType"`
	ListingType      string   `json:"listingType"`
	Status           string   `json:"status"`
	SqFt             *float64 `json:"sqFt"`
	PostedBy         string   `json:"postedBy"`
	Price            *float64 `json:"price"`
	Bedrooms         *string  `json:"bedrooms"`
	Bathrooms        *string  `json:"bathrooms"`
	Furnishing       *string  `json:"furnishing"`
	Address          *string  `json:"address"`
	City             *string  `json:"city"`
	State            *string  `json:"state"`
	Country          *string  `json:"country"`
	Zipcode          *string  `json:"zipcode"`
	Locality         *string  `json:"locality"`
	Neighborhood     *string  `json:"neighborhood"`
	FormattedAddress *string  `json:"formattedAddress"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	ProjectID        *string  `json:"projectId"`
	ThumbnailURL     *string  `json:"thumbnailUrl"`
	Images           []string `json:"images"`
	CreatedAt        string   `json:"createdAt"`
}

// FavoriteView is a saved listing plus when it was saved.
type FavoriteView struct {
	SavedID  string       `json:"savedId"`
	SavedAt  string       `json:"savedAt"`
	Property PropertyView `json:"property"`
}

// ToPropertyView flattens a property and its location into the client shape.
func ToPropertyView(p models.Property) PropertyView {
	view := PropertyView{
		PropertyID:   p.PropertyID.String(),
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		ListingType:  p.ListingType,
		Status:       p.Status,
		SqFt:         p.SqFt,
		PostedBy:     p.PostedBy,
		ThumbnailURL: p.ThumbnailURL,
		Images:       imagesSlice(p.Images),
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.ProjectID != nil {
		id := p.ProjectID.String()
		view.ProjectID = &id
	}
	if price, ok := detailsPrice(p); ok {
		view.Price = &price
	}
	view.Bedrooms = detailsString(p, "bedrooms")
	view.Bathrooms = detailsString(p, "bathrooms")
	view.Furnishing = detailsString(p, "furnishing")

	if loc := p.Location; loc != nil {
		address := loc.StreetAddress
		view.Address = &address
		view.City = loc.City
		view.State = loc.State
		country := loc.Country
		view.Country = &country
		view.Zipcode = loc.Zipcode
		view.Locality = loc.Locality
		view.Neighborhood = loc.Neighborhood
		view.FormattedAddress = loc.FormattedAddress
		lat, lng := loc.Latitude, loc.Longitude
		view.Latitude = &lat
		view.Longitude = &lng
	}
	return view
}

// ToPropertyViews maps a result set; never returns nil.
func ToPropertyViews(list []models.Property) []PropertyView {
	views := make([]PropertyView, 0, len(list))
	for _, p := range list {
		views = append(views, ToPropertyView(p))
	}
	return views
}

// ToFavoriteView flattens a saved row; the property may be absent if it was
// removed since saving.
func ToFavoriteView(s models.SavedProperty) FavoriteView {
	view := FavoriteView{
		SavedID: s.SavedID.String(),
		SavedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
	if s.Property != nil {
		view.Property = ToPropertyView(*s.Property)
	}
	return view
}

func ToFavoriteViews(list []models.SavedProperty) []FavoriteView {
	views := make([]FavoriteView, 0, len(list))
	for _, s := range list {
		views = append(views, ToFavoriteView(s))
	}
	return views
}

func detailsString(p models.Property, key string) *string {
	if len(p.Details) == 0 {
		return nil
	}
	var details map[string]interface{}
	if err := json.Unmarshal(p.Details, &details); err != nil {
		return nil
	}
	if s, ok := details[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

func imagesSlice(raw []byte) []string {
	var images []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &images)
	}
	if images == nil {
		images = []string{}
	}
	return images
}
