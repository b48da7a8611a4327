package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type EditAmountRequest struct {
	Text *string `json:"text" validate:"required,max=64" example:"12.5"`
}

type EditAmountResponse struct {
	StateResponse
	Accepted bool `json:"accepted" example:"true"`
}

// EditAmount godoc
// @Summary Edit the amount to convert
// @Description Text that is not digits with at most one decimal point is rejected and the previous amount kept
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body EditAmountRequest true "Amount text"
// @Success 200 {object} EditAmountResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/amount [put]
func (h *Handler) EditAmount(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req EditAmountRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	v, accepted, err := h.service.EditAmount(id, *req.Text)
	if err != nil {
		if writeSessionError(w, err) {
			return
		}
		msg := "ups, couldn't edit amount this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "EditAmount", "session_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, EditAmountResponse{StateResponse: toStateResponse(v), Accepted: accepted})
}
