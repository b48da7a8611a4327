package price

import (
	"slices"

	"fxswap/internal/domain"
)

// Index maps every currency of a feed to its latest price.
// It is built once by Normalize and is read only afterwards.
type Index struct {
	order  []string // currencies in first-seen order
	latest map[string]domain.LatestPrice
}

// Normalize folds raw observations into one latest price per currency.
//
// An observation replaces the stored one when its date is not before the stored date,
// so the latest date wins and ties resolve to the last observation in input order.
// Currency codes and prices are taken as they are.
func Normalize(observations []domain.PriceObservation) *Index {
	idx := &Index{
		order:  make([]string, 0, 16),
		latest: make(map[string]domain.LatestPrice, 16),
	}
	for _, obs := range observations {
		stored, ok := idx.latest[obs.Currency]
		if !ok {
			idx.order = append(idx.order, obs.Currency)
		} else if obs.Date.Before(stored.Date) {
			continue
		}
		idx.latest[obs.Currency] = domain.LatestPrice{
			Currency: obs.Currency,
			Price:    obs.Price,
			Date:     obs.Date,
		}
	}
	return idx
}

// Lookup returns the latest price of currency. A nil index holds nothing.
func (i *Index) Lookup(currency string) (domain.LatestPrice, bool) {
	if i == nil {
		return domain.LatestPrice{}, false
	}
	p, ok := i.latest[currency]
	return p, ok
}

// Len is the number of distinct currencies.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.order)
}

// Currencies returns currency codes in the order they first appeared in the feed.
func (i *Index) Currencies() []string {
	if i == nil {
		return nil
	}
	return slices.Clone(i.order)
}

// Candidates lists latest prices in first-seen currency order; this is what a currency picker offers.
func (i *Index) Candidates() []domain.LatestPrice {
	if i == nil {
		return nil
	}
	res := make([]domain.LatestPrice, 0, len(i.order))
	for _, c := range i.order {
		res = append(res, i.latest[c])
	}
	return res
}
