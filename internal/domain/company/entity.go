package company

import (
	"time"

	"corpsite/internal/store"
)

// ProfileDocID is the fixed key of the singleton company profile document.
const ProfileDocID = "company"

// Page names allowed in the pages collection.
var PageNames = map[string]bool{
	"home":    true,
	"about":   true,
	"contact": true,
}

// Profile is the one global company record consumed by the footer and the
// admin settings page.
type Profile struct {
	Name        string    `json:"name"`
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

func decode(doc store.Document) *Profile {
	return &Profile{
		Name:        doc.String("name"),
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
