package benefit

import (
	"time"

	"corpsite/internal/store"
)

// Benefit is a selling point owned by one sub-company. Like divisions, it
// keeps a plain foreign key with no cascade on parent deletion.
type Benefit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	SubCompanyID string    `json:"sub_company_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func decode(doc store.Document) *Benefit {
	return &Benefit{
		ID:           doc.ID,
		Name:         doc.String("name"),
		Description:  doc.String("description"),
		Icon:         doc.String("icon"),
		SubCompanyID: doc.String("sub_company_id"),
		CreatedAt:    doc.Time("created_at"),
		UpdatedAt:    doc.Time("updated_at"),
	}
}
