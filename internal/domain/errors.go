package domain

import "errors"

var (
	ErrFeedUnavailable = errors.New("price feed unavailable")
	ErrPricesNotLoaded = errors.New("amounts not yet loaded")
	ErrRateUnavailable = errors.New("rate not available")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrSessionNotFound = errors.New("session not found")
)
