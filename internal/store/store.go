package store

import (
	"errors"
	"fmt"
)

// Collection names used across the service. Every repository owns exactly one.
const (
	SubCompanies       = "sub_companies"
	Divisions          = "divisions"
	Benefits           = "benefits"
	Gallery            = "gallery"
	News               = "news"
	Organizations      = "organizations"
	Projects           = "projects"
	Users              = "users"
	CompanyProfiles    = "company_profiles"
	ContactSubmissions = "contact_submissions"
	Pages              = "pages"
)

// ErrNotFound is returned by Get and Update when the document id does not
// resolve. Repositories translate it to a nil result on reads.
var ErrNotFound = errors.New("document not found")

// WriteError wraps a store-level write rejection (network, permission, quota).
type WriteError struct {
	Op         string
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Filter is a server-side equality predicate for List.
type Filter struct {
	Field string
	Op    string // "==" is the only operator the backends guarantee
	Value any
}

// Eq builds an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: "==", Value: value}
}
