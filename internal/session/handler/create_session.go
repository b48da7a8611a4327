package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// CreateSession godoc
// @Summary Start a conversion session
// @Description Creates a session in the loading state and fetches the price feed once in the background
// @Tags Sessions
// @Produce json
// @Success 201 {object} StateResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	v := h.service.Create(r.Context())
	logrus.WithField("session_id", v.ID).Info("Session created")

	w.Header().Set("Location", "/api/v1/sessions/"+v.ID.String())
	writeJSON(w, http.StatusCreated, toStateResponse(v))
}
