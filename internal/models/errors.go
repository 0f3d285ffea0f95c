package models

import "errors"

var (
	ErrEmptySeries     = errors.New("series has no rows")
	ErrUnorderedSeries = errors.New("series dates are not strictly ascending")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidRange    = errors.New("invalid bar (high < low)")
	ErrInvalidVolume   = errors.New("invalid volume")
)
