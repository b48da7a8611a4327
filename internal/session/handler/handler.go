package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fxswap/internal/conversion"
	"fxswap/internal/domain"
	"fxswap/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 10

type Service interface {
	Create(ctx context.Context) session.View
	Get(id uuid.UUID) (session.View, error)
	Candidates(id uuid.UUID) (session.Picker, error)
	SelectFrom(id uuid.UUID, currency string) (session.View, error)
	SelectTo(id uuid.UUID, currency string) (session.View, error)
	EditAmount(id uuid.UUID, text string) (session.View, bool, error)
	Swap(id uuid.UUID) (session.View, error)
	Close(id uuid.UUID) error
	Convert(ctx context.Context, from, to, amount string) (conversion.Conversion, error)
}

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewSessionHandler(service Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type errorResponse struct {
	Error string `json:"error"`
}

// StateResponse is the display surface of a session.
type StateResponse struct {
	SessionID    string   `json:"session_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Status       string   `json:"status" example:"idle"`
	FromCurrency string   `json:"from_currency" example:"BTC"`
	ToCurrency   string   `json:"to_currency" example:"ETH"`
	FromAmount   string   `json:"from_amount" example:"2"`
	ToAmount     string   `json:"to_amount" example:"34.000000"`
	Rate         *float64 `json:"rate" example:"17"`
	Error        *string  `json:"error" example:"Rate not available for the selected currencies"`
}

func toStateResponse(v session.View) StateResponse {
	res := StateResponse{
		SessionID:    v.ID.String(),
		Status:       string(v.Phase),
		FromCurrency: v.State.FromCurrency,
		ToCurrency:   v.State.ToCurrency,
		FromAmount:   v.State.FromAmountText,
		ToAmount:     v.State.ToAmountText,
		Rate:         v.State.Rate,
	}
	if v.State.ErrorMessage != "" {
		msg := v.State.ErrorMessage
		res.Error = &msg
	}
	return res
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

// sessionID parses the {id} URL param; it writes the error response itself.
func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session ID format")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody reads a small JSON body into dst and validates it; it writes the error response itself.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "max":
			fields = append(fields, fmt.Sprintf("%s is too long", strings.ToLower(fe.Field())))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(fields, "; ")
}

// writeSessionError maps a session lookup error to a response.
func writeSessionError(w http.ResponseWriter, err error) bool {
	if errors.Is(err, domain.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return true
	}
	return false
}
