package subcompany

import "errors"

var (
	ErrNotFound  = errors.New("sub-company not found")
	ErrSlugTaken = errors.New("sub-company slug already taken")
)
