package httpserver

import (
	"net/http"
	"strconv"
)

const calculationNotFound = "Calculation not found"

func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.ErrorResponse(w, r, http.StatusUnprocessableEntity, "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *Handlers) decodeCalculation(w http.ResponseWriter, r *http.Request) (*CalculationCreate, bool) {
	var req CalculationCreate
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

// BrowseCalculations handles GET /calculations/
func (h *Handlers) BrowseCalculations(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	calcs, err := h.calculations.List(r.Context(), user.ID)
	if err != nil {
		h.ServiceError(w, r, err, calculationNotFound)
		return
	}

	out := make([]CalculationRead, 0, len(calcs))
	for _, c := range calcs {
		out = append(out, newCalculationRead(c))
	}

	h.JSONResponse(w, r, http.StatusOK, out)
}

// AddCalculation handles POST /calculations/
func (h *Handlers) AddCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeCalculation(w, r)
	if !ok {
		return
	}

	c, err := h.calculations.Create(r.Context(), user.ID, req.Input())
	if err != nil {
		h.ServiceError(w, r, err, calculationNotFound)
		return
	}

	h.logger.Info(r.Context(), "calculation created", "id", c.ID, "user_id", user.ID)

	h.JSONResponse(w, r, http.StatusOK, newCalculationRead(c))
}

// ReadCalculation handles GET /calculations/{id}
func (h *Handlers) ReadCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	c, err := h.calculations.Get(r.Context(), user.ID, id)
	if err != nil {
		h.ServiceError(w, r, err, calculationNotFound)
		return
	}

	h.JSONResponse(w, r, http.StatusOK, newCalculationRead(c))
}

// EditCalculation handles PUT and PATCH /calculations/{id}
func (h *Handlers) EditCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeCalculation(w, r)
	if !ok {
		return
	}

	c, err := h.calculations.Update(r.Context(), user.ID, id, req.Input())
	if err != nil {
		h.ServiceError(w, r, err, calculationNotFound)
		return
	}

	h.JSONResponse(w, r, http.StatusOK, newCalculationRead(c))
}

// DeleteCalculation handles DELETE /calculations/{id}
func (h *Handlers) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.calculations.Delete(r.Context(), user.ID, id); err != nil {
		h.ServiceError(w, r, err, calculationNotFound)
		return
	}

	h.logger.Info(r.Context(), "calculation deleted", "id", id, "user_id", user.ID)

	w.WriteHeader(http.StatusNoContent)
}
