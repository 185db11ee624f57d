package project

import (
	"time"

	"corpsite/internal/store"
)

// Feature is one highlighted capability of a project.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Specification is one label/value row on the project detail page.
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Project is a property listing on the showcase pages.
type Project struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Category       string          `json:"category"`
	Status         string          `json:"status"`
	Location       string          `json:"location"`
	Description    string          `json:"description"`
	Thumbnail      string          `json:"thumbnail"`
	Featured       bool            `json:"featured"`
	Images         []string        `json:"images"`
	Features       []Feature       `json:"features"`
	Specifications []Specification `json:"specifications"`
	Units          string          `json:"units"`
	Type           string          `json:"type"`
	Gradient       string          `json:"gradient"`
	Content        string          `json:"content"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func decode(doc store.Document) *Project {
	p := &Project{
		ID:          doc.ID,
		Title:       doc.String("title"),
		Slug:        doc.String("slug"),
		Category:    doc.String("category"),
		Status:      doc.String("status"),
		Location:    doc.String("location"),
		Description: doc.String("description"),
		Thumbnail:   doc.String("thumbnail"),
		Featured:    doc.Bool("featured"),
		Images:      doc.Strings("images"),
		Units:       doc.String("units"),
		Type:        doc.String("type"),
		Gradient:    doc.String("gradient"),
		Content:     doc.String("content"),
		CreatedAt:   doc.Time("created_at"),
		UpdatedAt:   doc.Time("updated_at"),
	}
	for _, m := range doc.Maps("features") {
		f := Feature{}
		if v, ok := m["icon"].(string); ok {
			f.Icon = v
		}
		if v, ok := m["title"].(string); ok {
			f.Title = v
		}
		if v, ok := m["description"].(string); ok {
			f.Description = v
		}
		p.Features = append(p.Features, f)
	}
	for _, m := range doc.Maps("specifications") {
		s := Specification{}
		if v, ok := m["label"].(string); ok {
			s.Label = v
		}
		if v, ok := m["value"].(string); ok {
			s.Value = v
		}
		p.Specifications = append(p.Specifications, s)
	}
	return p
}

func encodeFeatures(features []Feature) []map[string]any {
	out := make([]map[string]any, 0, len(features))
	for _, f := range features {
		out = append(out, map[string]any{
			"icon":        f.Icon,
			"title":       f.Title,
			"description": f.Description,
		})
	}
	return out
}

func encodeSpecifications(specs []Specification) []map[string]any {
	out := make([]map[string]any, 0, len(specs))
	for _, s := range specs {
		out = append(out, map[string]any{
			"label": s.Label,
			"value": s.Value,
		})
	}
	return out
}
