package domain

import "errors"

var (
	ErrMalformedDataset = errors.New("malformed dataset")
	ErrEmptyDataset     = errors.New("no canteens loaded")
	ErrUnknownView      = errors.New("unknown view")
	ErrUnknownFilter    = errors.New("unknown comment filter")
	ErrUnknownCanteen   = errors.New("unknown canteen")
	ErrUnknownEvent     = errors.New("unknown event type")
	ErrSessionNotFound  = errors.New("session not found")
)
