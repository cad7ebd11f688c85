package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/logging"
	"github.com/dmitrijs2005/calckeeper/internal/server/auth"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
	"github.com/dmitrijs2005/calckeeper/internal/server/services"
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
}

type CalculationService interface {
	List(ctx context.Context, userID int64) ([]*models.Calculation, error)
	Get(ctx context.Context, userID, id int64) (*models.Calculation, error)
	Create(ctx context.Context, userID int64, in services.CalculationInput) (*models.Calculation, error)
	Update(ctx context.Context, userID, id int64, in services.CalculationInput) (*models.Calculation, error)
	Delete(ctx context.Context, userID, id int64) error
}

type Authenticator interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

type Handlers struct {
	users         UserService
	calculations  CalculationService
	authenticator Authenticator
	ping          Pinger
	logger        logging.Logger
}

// NewHandlers wires the services behind the HTTP routes. ping may be nil
// when there is nothing to check.
func NewHandlers(us UserService, cs CalculationService, a Authenticator, ping Pinger, l logging.Logger) *Handlers {
	return &Handlers{
		users:         us,
		calculations:  cs,
		authenticator: a,
		ping:          ping,
		logger:        l.With("module", "http_handlers"),
	}
}

// currentUser resolves the caller. On failure the response is already
// written and ok is false.
func (h *Handlers) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	token := auth.BearerToken(r.Header.Get(common.AuthorizationHeaderName))

	user, err := h.authenticator.Resolve(r.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.ErrorResponse(w, r, http.StatusUnauthorized, "Could not validate credentials")
			return nil, false
		}
		h.ServiceError(w, r, err, "")
		return nil, false
	}

	return user, true
}

// Root handles GET /
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	h.JSONResponse(w, r, http.StatusOK, MessageRead{Message: "calckeeper: user calculations API"})
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.Error(r.Context(), "health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("UNAVAILABLE"))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
