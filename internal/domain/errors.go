package domain

import "errors"

var (
	// ErrInvalidTimeFrame rejects timeFrame values outside daily/weekly/monthly.
	ErrInvalidTimeFrame = errors.New("invalid time frame")
	// ErrUnknownReport rejects cache invalidation for a key no report uses.
	ErrUnknownReport = errors.New("unknown report key")
)
