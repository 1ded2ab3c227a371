package activity

import "errors"

var (
	ErrEmptyTrack             = errors.New("no GPS points provided")
	ErrInsufficientPoints     = errors.New("need at least 2 points to create an activity")
	ErrInvalidCoordinate      = errors.New("latitude/longitude out of range")
	ErrNonMonotonicTimestamps = errors.New("track timestamps are not in order")
)
