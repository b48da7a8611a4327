package handler

import (
	"errors"
	"net/http"

	"fxswap/internal/domain"

	"github.com/sirupsen/logrus"
)

type ConvertQuery struct {
	From   string `validate:"required,max=32"`
	To     string `validate:"required,max=32"`
	Amount string `validate:"required,max=64"`
}

type ConvertResponse struct {
	From   string  `json:"from" example:"BTC"`
	To     string  `json:"to" example:"ETH"`
	Amount string  `json:"amount" example:"2"`
	Rate   float64 `json:"rate" example:"17"`
	Result float64 `json:"result" example:"34"`
}

// Convert godoc
// @Summary Convert an amount
// @Description One-shot conversion with the latest prices of the feed, outside of any session
// @Tags Conversion
// @Produce json
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Param amount query string true "Amount"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := ConvertQuery{
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		Amount: r.URL.Query().Get("amount"),
	}
	if err := h.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	conv, err := h.service.Convert(r.Context(), q.From, q.To, q.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "amount must be a number greater than zero")
		case errors.Is(err, domain.ErrRateUnavailable):
			writeError(w, http.StatusUnprocessableEntity, "rate not available")
		case errors.Is(err, domain.ErrFeedUnavailable), errors.Is(err, domain.ErrPricesNotLoaded):
			logrus.WithError(err).WithField("handler", "Convert").Warn("price feed unavailable")
			writeError(w, http.StatusServiceUnavailable, "price feed unavailable")
		default:
			msg := "ups, couldn't convert this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Convert", "from": q.From, "to": q.To}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		From:   q.From,
		To:     q.To,
		Amount: q.Amount,
		Rate:   conv.Rate,
		Result: conv.Amount,
	})
}
