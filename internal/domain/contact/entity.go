package contact

import (
	"time"

	"corpsite/internal/store"
)

// Submission status values. A submission starts "new", becomes "read" when an
// editor opens it in the inbox, and "replied" on an explicit reply action.
const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// Submission is one contact-form message. Append-only from the public form;
// only status transitions and deletion happen afterwards.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func decode(doc store.Document) *Submission {
	return &Submission{
		ID:        doc.ID,
		Name:      doc.String("name"),
		Email:     doc.String("email"),
		Message:   doc.String("message"),
		Status:    doc.String("status"),
		CreatedAt: doc.Time("created_at"),
		UpdatedAt: doc.Time("updated_at"),
	}
}
