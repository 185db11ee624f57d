package staticgen

import (
	"time"

	"corpsite/internal/domain/benefit"
	"corpsite/internal/domain/division"
	"corpsite/internal/domain/gallery"
	"corpsite/internal/domain/news"
	"corpsite/internal/domain/subcompany"
)

// View structs mirror the entities with every timestamp flattened to an
// RFC3339 string. Native timestamp types must never appear in props; the
// frontend build serializes whatever it receives, and a raw time value would
// not survive that round trip intact.

type SubCompanyView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Email       string `json:"email"`
	MobilePhone string `json:"mobile_phone"`
	Address     string `json:"address"`
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	TikTok      string `json:"tiktok"`
	YouTube     string `json:"youtube"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type DivisionView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	SubCompanyID string `json:"sub_company_id"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type BenefitView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	SubCompanyID string `json:"sub_company_id"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type MediaView struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type GalleryItemView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Images     []MediaView `json:"images"`
	PhotoCount int         `json:"photo_count"`
	VideoCount int         `json:"video_count"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

type NewsArticleView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Thumbnail   string   `json:"thumbnail"`
	Author      string   `json:"author"`
	Status      string   `json:"status"`
	Keywords    []string `json:"keywords"`
	PublishedAt string   `json:"published_at"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// formatTime renders RFC3339 UTC, or "" for the zero value (unset fields,
// e.g. published_at on a never-published draft).
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func subCompanyView(s *subcompany.SubCompany) SubCompanyView {
	return SubCompanyView{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Logo:        s.Logo,
		Email:       s.Email,
		MobilePhone: s.MobilePhone,
		Address:     s.Address,
		Facebook:    s.Facebook,
		Instagram:   s.Instagram,
		TikTok:      s.TikTok,
		YouTube:     s.YouTube,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func divisionViews(divisions []*division.Division) []DivisionView {
	out := make([]DivisionView, 0, len(divisions))
	for _, d := range divisions {
		out = append(out, DivisionView{
			ID:           d.ID,
			Name:         d.Name,
			Description:  d.Description,
			Icon:         d.Icon,
			SubCompanyID: d.SubCompanyID,
			CreatedAt:    formatTime(d.CreatedAt),
			UpdatedAt:    formatTime(d.UpdatedAt),
		})
	}
	return out
}

func benefitViews(benefits []*benefit.Benefit) []BenefitView {
	out := make([]BenefitView, 0, len(benefits))
	for _, b := range benefits {
		out = append(out, BenefitView{
			ID:           b.ID,
			Name:         b.Name,
			Description:  b.Description,
			Icon:         b.Icon,
			SubCompanyID: b.SubCompanyID,
			CreatedAt:    formatTime(b.CreatedAt),
			UpdatedAt:    formatTime(b.UpdatedAt),
		})
	}
	return out
}

func galleryItemView(item *gallery.Item) GalleryItemView {
	images := make([]MediaView, 0, len(item.Images))
	for _, m := range item.Images {
		images = append(images, MediaView{Type: m.Type, URL: m.URL})
	}
	return GalleryItemView{
		ID:         item.ID,
		Name:       item.Name,
		Type:       item.Type,
		Images:     images,
		PhotoCount: item.PhotoCount(),
		VideoCount: item.VideoCount(),
		CreatedAt:  formatTime(item.CreatedAt),
		UpdatedAt:  formatTime(item.UpdatedAt),
	}
}

func newsArticleView(a *news.Article) NewsArticleView {
	return NewsArticleView{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		Thumbnail:   a.Thumbnail,
		Author:      a.Author,
		Status:      a.Status,
		Keywords:    a.Keywords,
		PublishedAt: formatTime(a.PublishedAt),
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}
