package handler

import (
	"net/http"

	"fxswap/internal/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SelectCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,max=32" example:"ETH"`
}

// SelectFrom godoc
// @Summary Select the source currency
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectCurrencyRequest true "Currency"
// @Success 200 {object} StateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/from [put]
func (h *Handler) SelectFrom(w http.ResponseWriter, r *http.Request) {
	h.selectCurrency(w, r, "SelectFrom", h.service.SelectFrom)
}

// SelectTo godoc
// @Summary Select the target currency
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectCurrencyRequest true "Currency"
// @Success 200 {object} StateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/to [put]
func (h *Handler) SelectTo(w http.ResponseWriter, r *http.Request) {
	h.selectCurrency(w, r, "SelectTo", h.service.SelectTo)
}

func (h *Handler) selectCurrency(w http.ResponseWriter, r *http.Request, name string, apply func(uuid.UUID, string) (session.View, error)) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req SelectCurrencyRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	// currency codes are taken verbatim: the feed is case-sensitive
	v, err := apply(id, req.Currency)
	if err != nil {
		if writeSessionError(w, err) {
			return
		}
		msg := "ups, couldn't select currency this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": name, "session_id": id, "currency": req.Currency}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(v))
}
