package division

import (
	"time"

	"corpsite/internal/store"
)

// Division belongs to exactly one sub-company via sub_company_id. Deleting
// the parent does not cascade, so orphans are possible and rendered with a
// fallback label instead of a raw id.
type Division struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	SubCompanyID string    `json:"sub_company_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func decode(doc store.Document) *Division {
	return &Division{
		ID:           doc.ID,
		Name:         doc.String("name"),
		Description:  doc.String("description"),
		Icon:         doc.String("icon"),
		SubCompanyID: doc.String("sub_company_id"),
		CreatedAt:    doc.Time("created_at"),
		UpdatedAt:    doc.Time("updated_at"),
	}
}
