package subcompany

import (
	"time"

	"corpsite/internal/store"
)

// SubCompany is one brand under the holding company. Its public identity is
// the persisted slug; documents written before slugs were stored are still
// resolvable through a derived-slug scan (see Repository.ResolveSlug).
type SubCompany struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	Email       string    `json:"email"`
	MobilePhone string    `json:"mobile_phone"`
	Address     string    `json:"address"`
	Facebook    string    `json:"facebook"`
	Instagram   string    `json:"instagram"`
	TikTok      string    `json:"tiktok"`
	YouTube     string    `json:"youtube"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func decode(doc store.Document) *SubCompany {
	return &SubCompany{
		ID:          doc.ID,
		Name:        doc.String("name"),
		Slug:        doc.String("slug"),
		Description: doc.String("description"),
		Logo:        doc.String("logo"),
		Email:       doc.String("email"),
		MobilePhone: doc.String("mobile_phone"),
		Address:     doc.String("address"),
		Facebook:    doc.String("facebook"),
		Instagram:   doc.String("instagram"),
		TikTok:      doc.String("tiktok"),
		YouTube:     doc.String("youtube"),
		CreatedAt:   doc.Time("created_at"),
		UpdatedAt:   doc.Time("updated_at"),
	}
}
