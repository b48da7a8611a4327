package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type CandidateResponse struct {
	Currency string    `json:"currency" example:"BTC"`
	Price    float64   `json:"price" example:"51000"`
	Date     time.Time `json:"date" example:"2024-01-02T00:00:00Z"`
}

type PickerSide struct {
	Selected   string              `json:"selected" example:"BTC"`
	Candidates []CandidateResponse `json:"candidates"`
}

type ListCurrenciesResponse struct {
	From PickerSide `json:"from"`
	To   PickerSide `json:"to"`
}

// ListCurrencies godoc
// @Summary List selectable currencies
// @Description Selected currency and candidate list for both pickers of a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ListCurrenciesResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/currencies [get]
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	p, err := h.service.Candidates(id)
	if err != nil {
		if writeSessionError(w, err) {
			return
		}
		msg := "ups, couldn't list currencies this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListCurrencies", "session_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	candidates := make([]CandidateResponse, 0, len(p.Candidates))
	for _, c := range p.Candidates {
		candidates = append(candidates, CandidateResponse{Currency: c.Currency, Price: c.Price, Date: c.Date})
	}
	writeJSON(w, http.StatusOK, ListCurrenciesResponse{
		From: PickerSide{Selected: p.From, Candidates: candidates},
		To:   PickerSide{Selected: p.To, Candidates: candidates},
	})
}
