package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
)

// decodeUser reads and validates a UserCreate body, answering 422 itself
// when it is unusable.
func (h *Handlers) decodeUser(w http.ResponseWriter, r *http.Request) (*UserCreate, bool) {
	var req UserCreate
	if err := ParseJSONBody(r, &req); err != nil {
		h.ErrorResponse(w, r, http.StatusUnprocessableEntity, "Invalid JSON")
		return nil, false
	}
	if err := req.Validate(); err != nil {
		h.validationError(w, r, err)
		return nil, false
	}
	return &req, true
}

func (h *Handlers) validationError(w http.ResponseWriter, r *http.Request, err error) {
	var errs validation.Errors
	if errors.As(err, &errs) {
		h.ErrorResponse(w, r, http.StatusUnprocessableEntity, errs)
		return
	}
	h.ErrorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

// Register handles POST /register
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUser(w, r)
	if !ok {
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			h.ErrorResponse(w, r, http.StatusBadRequest, "Email already registered")
			return
		}
		h.ServiceError(w, r, err, "")
		return
	}

	h.logger.Info(r.Context(), "user registered", "user_id", user.ID)

	h.JSONResponse(w, r, http.StatusOK, newUserRead(user))
}

// Login handles POST /login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUser(w, r)
	if !ok {
		return
	}

	pair, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.ErrorResponse(w, r, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		h.ServiceError(w, r, err, "")
		return
	}

	h.JSONResponse(w, r, http.StatusOK, TokenRead{AccessToken: pair.AccessToken, TokenType: pair.TokenType})
}
