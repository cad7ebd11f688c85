package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/server/calc"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Detail any `json:"detail"`
}

// JSONResponse writes data as a JSON response.
func (h *Handlers) JSONResponse(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes {"detail": detail}.
func (h *Handlers) ErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, detail any) {
	if statusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	h.JSONResponse(w, r, statusCode, ErrorBody{Detail: detail})
}

// ServiceError maps a service error onto a status code. Anything
// unrecognised is logged and reported as a bare 500.
func (h *Handlers) ServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		h.ErrorResponse(w, r, http.StatusNotFound, notFound)
	case errors.Is(err, common.ErrorValidation):
		h.ErrorResponse(w, r, http.StatusUnprocessableEntity, capitalize(err.Error()))
	case errors.Is(err, common.ErrorUnauthorized):
		h.ErrorResponse(w, r, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, calc.ErrDivisionByZero):
		h.ErrorResponse(w, r, http.StatusBadRequest, "Cannot divide by zero")
	case errors.Is(err, calc.ErrUnsupportedOperation), errors.Is(err, calc.ErrResultOutOfRange):
		h.ErrorResponse(w, r, http.StatusBadRequest, capitalize(err.Error()))
	default:
		h.logger.Error(r.Context(), "request failed", "error", err)
		h.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// ParseJSONBody parses the request body into v.
func ParseJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
