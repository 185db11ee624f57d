package gallery

import (
	"time"

	"corpsite/internal/store"
)

// Item type determines which media kinds its images list may carry.
const (
	TypeHome    = "Home"    // hero media: video_desktop / video_mobile
	TypeGallery = "gallery" // showcase media: photo / video
)

// Media kinds within Item.Images.
const (
	MediaPhoto        = "photo"
	MediaVideo        = "video"
	MediaVideoDesktop = "video_desktop"
	MediaVideoMobile  = "video_mobile"
)

// Media is one entry in an item's ordered, index-addressed media list.
type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Item is a gallery document. "Home" items feed the homepage hero; "gallery"
// items feed the public gallery pages.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Images    []Media   `json:"images"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhotoCount tolerates an empty or missing media list.
func (i *Item) PhotoCount() int {
	n := 0
	for _, m := range i.Images {
		if m.Type == MediaPhoto {
			n++
		}
	}
	return n
}

// VideoCount counts every video kind, hero variants included.
func (i *Item) VideoCount() int {
	n := 0
	for _, m := range i.Images {
		switch m.Type {
		case MediaVideo, MediaVideoDesktop, MediaVideoMobile:
			n++
		}
	}
	return n
}

// FirstURL returns the URL of the first media entry with the given type,
// or "" when none exists.
func (i *Item) FirstURL(mediaType string) string {
	for _, m := range i.Images {
		if m.Type == mediaType {
			return m.URL
		}
	}
	return ""
}

func decode(doc store.Document) *Item {
	item := &Item{
		ID:        doc.ID,
		Name:      doc.String("name"),
		Type:      doc.String("type"),
		CreatedAt: doc.Time("created_at"),
		UpdatedAt: doc.Time("updated_at"),
	}
	for _, m := range doc.Maps("images") {
		media := Media{}
		if t, ok := m["type"].(string); ok {
			media.Type = t
		}
		if u, ok := m["url"].(string); ok {
			media.URL = u
		}
		item.Images = append(item.Images, media)
	}
	return item
}

func encodeMedia(images []Media) []map[string]any {
	out := make([]map[string]any, 0, len(images))
	for _, m := range images {
		out = append(out, map[string]any{"type": m.Type, "url": m.URL})
	}
	return out
}
