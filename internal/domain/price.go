package domain

import (
	"time"
)

// PriceObservation is one historical quote of a currency as delivered by the feed.
type PriceObservation struct {
	Currency string    `json:"currency"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
}

// LatestPrice is the current price of a currency: the observation with the latest date.
type LatestPrice struct {
	Currency string    `json:"currency"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
}
