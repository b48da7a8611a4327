package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// GetSession godoc
// @Summary Get session state
// @Description Current amounts, rate and error message of a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} StateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	v, err := h.service.Get(id)
	if err != nil {
		if writeSessionError(w, err) {
			return
		}
		msg := "ups, couldn't get session this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetSession", "session_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(v))
}
