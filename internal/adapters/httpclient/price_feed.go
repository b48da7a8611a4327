package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"fxswap/internal/domain"

	"github.com/tidwall/gjson"
)

const maxFeedBytes = 16 << 20

// dateLayouts are the ISO-8601 shapes accepted for an observation date.
// Dates without an offset are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// PriceFeedClient fetches the price feed: a JSON array of {currency, price, date} objects.
type PriceFeedClient struct {
	http    *http.Client
	feedURL string
}

func (c *PriceFeedClient) Name() string { return "http:" + c.feedURL }

func (c *PriceFeedClient) FetchObservations(ctx context.Context) ([]domain.PriceObservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create price feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute price feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from price feed: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read price feed body: %w", err)
	}
	return decodeObservations(body)
}

func decodeObservations(body []byte) ([]domain.PriceObservation, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to decode price feed: invalid json")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("failed to decode price feed: expected an array, got %s", root.Type)
	}

	observations := make([]domain.PriceObservation, 0, len(root.Array()))
	var decodeErr error
	root.ForEach(func(_, item gjson.Result) bool {
		date, err := parseDate(item.Get("date").String())
		if err != nil {
			decodeErr = fmt.Errorf("failed to decode price feed entry %d: %w", len(observations), err)
			return false
		}
		observations = append(observations, domain.PriceObservation{
			Currency: item.Get("currency").String(),
			Price:    item.Get("price").Float(),
			Date:     date,
		})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return observations, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", raw)
}

func NewPriceFeedClient(httpClient *http.Client, feedURL string) *PriceFeedClient {
	return &PriceFeedClient{http: httpClient, feedURL: feedURL}
}
