package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// CloseSession godoc
// @Summary End a session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id} [delete]
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Close(id); err != nil {
		if writeSessionError(w, err) {
			return
		}
		msg := "ups, couldn't close session this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CloseSession", "session_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	logrus.WithField("session_id", id).Info("Session closed")
	w.WriteHeader(http.StatusNoContent)
}
