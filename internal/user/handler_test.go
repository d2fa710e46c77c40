package user

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(store UserStore) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(NewService(store, bcrypt.MinCost), logger)
	r := chi.NewRouter()
	r.Route("/users", h.RegisterRoutes)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestHandler(t *testing.T) {
	store := newMockStore()
	router := newTestRouter(store)

	testCases := []struct {
		name            string
		method          string
		path            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{"register", http.MethodPost, "/users/", `{"email":"a@b.co","password":"secret1"}`, http.StatusCreated, "user created"},
		{"duplicate", http.MethodPost, "/users/", `{"email":"a@b.co","password":"secret1"}`, http.StatusConflict, ErrUserAlreadyExists.Error()},
		{"invalid", http.MethodPost, "/users/", `{"email":"nope","password":"secret1"}`, http.StatusBadRequest, ErrInvalidUser.Error()},
		{"password over 72 bytes", http.MethodPost, "/users/", `{"email":"e@f.co","password":"` + strings.Repeat("é", 40) + `"}`, http.StatusBadRequest, ErrInvalidUser.Error()},
		{"malformed", http.MethodPost, "/users/", `{"email":`, http.StatusBadRequest, ErrMalformedBody.Error()},
		{"trailing data", http.MethodPost, "/users/", `{"email":"c@d.co","password":"secret1"}garbage`, http.StatusBadRequest, ErrMalformedBody.Error()},
		{"found", http.MethodGet, "/users/a@b.co", "", http.StatusOK, "user found"},
		{"not found", http.MethodGet, "/users/x@y.co", "", http.StatusNotFound, ErrUserNotFound.Error()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)
			var body envelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedMessage, body.Message)
			assert.Equal(t, rr.Code < 300, body.Success)
			if !body.Success {
				assert.JSONEq(t, "null", string(body.Data))
			} else {
				assert.NotContains(t, string(body.Data), "password")
			}
		})
	}
}

func TestHandler_StoreUnavailable(t *testing.T) {
	store := newMockStore()
	store.createErr = ErrUnavailable
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(`{"email":"a@b.co","password":"secret1"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
