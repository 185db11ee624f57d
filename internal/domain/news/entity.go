package news

import (
	"time"

	"corpsite/internal/store"
)

// Article status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is one news post. The slug is editor-supplied, defaulted from the
// title; uniqueness among published articles is not enforced at write time,
// so public lookup resolves duplicates by most recent published_at.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Thumbnail   string    `json:"thumbnail"`
	Author      string    `json:"author"`
	Status      string    `json:"status"`
	Keywords    []string  `json:"keywords"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsPublished reports whether the article is visible on the public site.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

func decode(doc store.Document) *Article {
	return &Article{
		ID:          doc.ID,
		Title:       doc.String("title"),
		Slug:        doc.String("slug"),
		Content:     doc.String("content"),
		Excerpt:     doc.String("excerpt"),
		Thumbnail:   doc.String("thumbnail"),
		Author:      doc.String("author"),
		Status:      doc.String("status"),
		Keywords:    doc.Strings("keywords"),
		PublishedAt: doc.Time("published_at"),
		CreatedAt:   doc.Time("created_at"),
		UpdatedAt:   doc.Time("updated_at"),
	}
}
