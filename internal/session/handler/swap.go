package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Swap godoc
// @Summary Swap source and target currencies
// @Description Exchanges both currencies at once and recomputes; no funds are moved
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} StateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/swap [post]
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	v, err := h.service.Swap(id)
	if err != nil {
		if writeSessionError(w, err) {
			return
		}
		msg := "ups, couldn't swap currencies this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Swap", "session_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(v))
}
