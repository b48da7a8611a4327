package conversion

import (
	"errors"

	"fxswap/internal/domain"
	"fxswap/internal/price"

	"github.com/shopspring/decimal"
)

type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseIdle    Phase = "idle"
	PhaseError   Phase = "error"
)

const (
	DefaultFractionDigits = 6
	DefaultAmount         = "1"
)

// Messages shown to the user for each failure.
const (
	MsgFeedUnavailable = "Price feed unavailable, please try again later"
	MsgPricesNotLoaded = "Amounts not yet loaded"
	MsgRateUnavailable = "Rate not available for the selected currencies"
	MsgInvalidAmount   = "Enter an amount greater than zero"
)

// State is what the display surface renders. ToAmountText and Rate are always derived;
// an empty ErrorMessage means no error.
type State struct {
	FromCurrency   string
	ToCurrency     string
	FromAmountText string
	ToAmountText   string
	Rate           *float64
	ErrorMessage   string
}

type Options struct {
	FractionDigits int32
	DefaultAmount  string
}

// Controller owns the conversion state of one user and recomputes it after every change.
// It is not safe for concurrent use: callers serialize events.
type Controller struct {
	index *price.Index // nil while loading
	state State
	opts  Options
}

func NewController(opts Options) *Controller {
	if opts.FractionDigits < 0 {
		opts.FractionDigits = DefaultFractionDigits
	}
	if opts.DefaultAmount == "" || !WellFormedAmount(opts.DefaultAmount) {
		opts.DefaultAmount = DefaultAmount
	}
	return &Controller{
		state: State{FromAmountText: opts.DefaultAmount},
		opts:  opts,
	}
}

// Load makes the price index available and selects the default pair:
// the first two distinct currencies, or the only one twice.
func (c *Controller) Load(index *price.Index) {
	if index == nil {
		index = price.Normalize(nil)
	}
	c.index = index

	currencies := index.Currencies()
	switch {
	case len(currencies) >= 2:
		c.state.FromCurrency, c.state.ToCurrency = currencies[0], currencies[1]
	case len(currencies) == 1:
		c.state.FromCurrency, c.state.ToCurrency = currencies[0], currencies[0]
	}
	c.recompute()
}

// FailLoad records that the feed could not be fetched. The controller stays loading.
func (c *Controller) FailLoad(error) {
	if c.index != nil {
		return
	}
	c.state.ErrorMessage = MsgFeedUnavailable
}

// SelectFrom changes the source currency and recomputes. Ignored while loading.
func (c *Controller) SelectFrom(currency string) {
	if c.index == nil {
		return
	}
	c.state.FromCurrency = currency
	c.recompute()
}

// SelectTo changes the target currency and recomputes. Ignored while loading.
func (c *Controller) SelectTo(currency string) {
	if c.index == nil {
		return
	}
	c.state.ToCurrency = currency
	c.recompute()
}

// EditAmount adopts text as the new amount when it is well formed and reports whether it did.
func (c *Controller) EditAmount(text string) bool {
	if c.index == nil {
		return false
	}
	accepted := AcceptAmount(c.state.FromAmountText, text)
	if accepted != text {
		return false
	}
	c.state.FromAmountText = accepted
	c.recompute()
	return true
}

// Swap exchanges both currencies in a single assignment,
// then recomputes. Ignored while loading.
func (c *Controller) Swap() {
	if c.index == nil {
		return
	}
	c.state.FromCurrency, c.state.ToCurrency = c.state.ToCurrency, c.state.FromCurrency
	c.recompute()
}

// Phase is loading until an index arrives, then error or idle depending on the last recompute.
func (c *Controller) Phase() Phase {
	switch {
	case c.index == nil:
		return PhaseLoading
	case c.state.ErrorMessage != "":
		return PhaseError
	default:
		return PhaseIdle
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	if s.Rate != nil {
		r := *s.Rate
		s.Rate = &r
	}
	return s
}

// Candidates lists the currencies both pickers can choose from.
func (c *Controller) Candidates() []domain.LatestPrice {
	return c.index.Candidates()
}

func (c *Controller) recompute() {
	next := State{
		FromCurrency:   c.state.FromCurrency,
		ToCurrency:     c.state.ToCurrency,
		FromAmountText: c.state.FromAmountText,
	}

	conv, err := Compute(c.index, next.FromCurrency, next.ToCurrency, next.FromAmountText)
	if err != nil {
		next.ErrorMessage = messageFor(err)
	} else {
		rate := conv.Rate
		next.Rate = &rate
		next.ToAmountText = decimal.NewFromFloat(conv.Amount).StringFixed(c.opts.FractionDigits)
	}
	c.state = next
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrPricesNotLoaded):
		return MsgPricesNotLoaded
	case errors.Is(err, domain.ErrRateUnavailable):
		return MsgRateUnavailable
	default:
		return MsgInvalidAmount
	}
}
