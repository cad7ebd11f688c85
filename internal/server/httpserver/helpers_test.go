package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/logging"
	"github.com/dmitrijs2005/calckeeper/internal/server/auth"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/calckeeper/internal/server/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testAPI struct {
	handler http.Handler
	tokens  *auth.TokenService
	repos   *memory.RepositoryManager
}

func newTestAPI(t *testing.T, allowAnonymous bool) *testAPI {
	t.Helper()

	repos := memory.NewRepositoryManager()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	us := services.NewUserService(nil, repos, hasher, tokens)
	cs := services.NewCalculationService(nil, repos, repos)
	a := auth.NewAuthenticator(tokens, repos.Users(nil), hasher, allowAnonymous, logging.Nop{})

	h := NewHandlers(us, cs, a, nil, logging.Nop{})
	return &testAPI{handler: NewRouter(h, logging.Nop{}), tokens: tokens, repos: repos}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *testAPI) registerAndLogin(t *testing.T, email, password string) (UserRead, string) {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/register", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decode[UserRead](t, rec)

	rec = a.do(t, http.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tok := decode[TokenRead](t, rec)

	return user, tok.AccessToken
}
