package projects

import (
	"encoding/json"
	"time"

	"propnest-backend/internal/models"
)

// ProjectView flattens a project and its builder for clients.
type ProjectView struct {
	ProjectID    string   `json:"projectId"`
	Name         string   `json:"name"`
	BuilderID    string   `json:"builderId"`
	BuilderName  *string  `json:"builderName"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Status       string   `json:"status"`
	PriceRange   *string  `json:"priceRange"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	Images       []string `json:"images"`
	Highlights   []string `json:"highlights"`
	Amenities    []string `json:"amenities"`
	CreatedAt    string   `json:"createdAt"`
}

func ToProjectView(p models.Project) ProjectView {
	view := ProjectView{
		ProjectID:    p.ProjectID.String(),
		Name:         p.Name,
		BuilderID:    p.BuilderID.String(),
		City:         p.City,
		State:        p.State,
		Status:       p.Status,
		PriceRange:   p.PriceRange,
		ThumbnailURL: p.ThumbnailURL,
		Images:       stringArray(p.Images),
		Highlights:   stringArray(p.Highlights),
		Amenities:    stringArray(p.Amenities),
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.Builder != nil {
		name := p.Builder.Name
		view.BuilderName = &name
	}
	return view
}

func ToProjectViews(list []models.Project) []ProjectView {
	views := make([]ProjectView, 0, len(list))
	for _, p := range list {
		views = append(views, ToProjectView(p))
	}
	return views
}

func stringArray(raw []byte) []string {
	var items []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	if items == nil {
		items = []string{}
	}
	return items
}
