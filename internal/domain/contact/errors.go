package contact

import "errors"

var ErrSubmissionNotFound = errors.New("contact submission not found")
