package gallery

import "errors"

var (
	ErrInvalidType  = errors.New("gallery item type must be Home or gallery")
	ErrInvalidMedia = errors.New("media type not allowed for this item type")
)
