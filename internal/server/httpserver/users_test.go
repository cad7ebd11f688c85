package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	api := newTestAPI(t, true)

	rec := api.do(t, http.MethodPost, "/register", "", map[string]string{"email": "a@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret")

	u := decode[UserRead](t, rec)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "a@example.com", u.Email)
	assert.True(t, u.IsActive)
}

func TestRegister_Duplicate(t *testing.T) {
	api := newTestAPI(t, true)

	body := map[string]string{"email": "a@example.com", "password": "secret"}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/register", "", body).Code)

	rec := api.do(t, http.MethodPost, "/users/register", "", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decode[ErrorBody](t, rec).Detail)
}

func TestRegister_InvalidPayload(t *testing.T) {
	api := newTestAPI(t, true)

	tests := []struct {
		name string
		body any
	}{
		{"not json", "{"},
		{"missing password", map[string]string{"email": "a@example.com"}},
		{"bad email", map[string]string{"email": "nope", "password": "x"}},
		{"wrong types", `{"email": 1, "password": true}`},
		{"password over 72 bytes", map[string]string{"email": "a@example.com", "password": strings.Repeat("p", 73)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/register", "", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), `"detail"`)
		})
	}
}

func TestRegister_ValidationDetailNamesField(t *testing.T) {
	api := newTestAPI(t, true)

	rec := api.do(t, http.MethodPost, "/register", "", map[string]string{"email": "nope", "password": "x"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode[map[string]map[string]string](t, rec)
	assert.Contains(t, body["detail"], "email")
}

func TestRegister_PasswordLengthLimit(t *testing.T) {
	api := newTestAPI(t, true)

	rec := api.do(t, http.MethodPost, "/register", "", map[string]string{"email": "long@example.com", "password": strings.Repeat("p", 73)})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[map[string]map[string]string](t, rec)
	assert.Contains(t, body["detail"], "password")

	rec = api.do(t, http.MethodPost, "/register", "", map[string]string{"email": "long@example.com", "password": strings.Repeat("p", 72)})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t, true)
	user, token := api.registerAndLogin(t, "a@example.com", "secret")

	id, err := api.tokens.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	rec := api.do(t, http.MethodPost, "/users/login", "", map[string]string{"email": "a@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bearer", decode[TokenRead](t, rec).TokenType)
}

func TestLogin_Rejected(t *testing.T) {
	api := newTestAPI(t, true)
	api.registerAndLogin(t, "a@example.com", "secret")

	for _, body := range []map[string]string{
		{"email": "a@example.com", "password": "wrong"},
		{"email": "b@example.com", "password": "secret"},
	} {
		rec := api.do(t, http.MethodPost, "/login", "", body)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Incorrect email or password", decode[ErrorBody](t, rec).Detail)
	}
}

func TestRootAndHealth(t *testing.T) {
	api := newTestAPI(t, true)

	rec := api.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(decode[MessageRead](t, rec).Message, "calckeeper"))

	rec = api.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = api.do(t, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
