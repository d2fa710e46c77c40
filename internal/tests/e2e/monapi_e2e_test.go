// Package e2e runs the full monapi HTTP stack against a PostgreSQL container.
//
// The suite starts the database with testcontainers-go, applies the embedded migrations and serves
// the real application handler from an httptest.Server. Set MONAPI_SKIP_INTEGRATION_TESTS=1 to skip it.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/abgdnv/monapi/internal/app"
	"github.com/abgdnv/monapi/internal/platform/pgtest"
	pkgconfig "github.com/abgdnv/monapi/pkg/config"
	"github.com/stretchr/testify/suite"
)

const apiPrefix = "/monapi"

type MonapiE2ESuite struct {
	suite.Suite
	pg         *pgtest.Postgres
	server     *httptest.Server
	httpClient *http.Client
	logger     *slog.Logger
	ctx        context.Context
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *MonapiE2ESuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pg, err := pgtest.Start(s.ctx, s.logger)
	s.Require().NoError(err, "Failed to start PostgreSQL")
	s.pg = pg

	apiCfg := pkgconfig.APIConfig{Prefix: apiPrefix}
	corsCfg := pkgconfig.CORSConfig{}
	s.Require().NoError(apiCfg.Validate())
	s.Require().NoError(corsCfg.Validate())

	deps := app.SetupDependencies(pg.Pool, s.logger)
	s.server = httptest.NewServer(app.SetupHttpHandler(deps, apiCfg, corsCfg))
	s.httpClient = &http.Client{Timeout: 10 * time.Second}
}

func (s *MonapiE2ESuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pg != nil {
		s.pg.Terminate(s.ctx, s.logger)
	}
}

func (s *MonapiE2ESuite) SetupTest() {
	_, err := s.pg.Pool.Exec(s.ctx, `TRUNCATE "user", health_check RESTART IDENTITY`)
	s.Require().NoError(err, "Failed to truncate tables")
}

func (s *MonapiE2ESuite) do(method, path string, body any) (int, envelope) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(s.ctx, method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (s *MonapiE2ESuite) TestHealthz_RecordsChecks() {
	for want := 1; want <= 2; want++ {
		code, env := s.do(http.MethodGet, "/healthz", nil)
		s.Equal(http.StatusOK, code)
		var status struct {
			Status  string `json:"status"`
			CheckID int    `json:"checkId"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &status))
		s.Equal("ok", status.Status)
		s.Equal(want, status.CheckID)
	}

	var count int
	s.Require().NoError(s.pg.Pool.QueryRow(s.ctx, `SELECT count(*) FROM health_check`).Scan(&count))
	s.Equal(2, count)
}

func (s *MonapiE2ESuite) TestUsers() {
	testCases := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
		expectedEmail  string
	}{
		{
			name:           "register",
			method:         http.MethodPost,
			path:           apiPrefix + "/users",
			body:           map[string]string{"email": "jane@example.com", "password": "secret1"},
			expectedStatus: http.StatusCreated,
			expectedEmail:  "jane@example.com",
		},
		{
			name:           "duplicate email",
			method:         http.MethodPost,
			path:           apiPrefix + "/users",
			body:           map[string]string{"email": "jane@example.com", "password": "another"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid email",
			method:         http.MethodPost,
			path:           apiPrefix + "/users",
			body:           map[string]string{"email": "jane", "password": "secret1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "lookup",
			method:         http.MethodGet,
			path:           apiPrefix + "/users/jane@example.com",
			expectedStatus: http.StatusOK,
			expectedEmail:  "jane@example.com",
		},
		{
			name:           "lookup unknown",
			method:         http.MethodGet,
			path:           apiPrefix + "/users/john@example.com",
			expectedStatus: http.StatusNotFound,
		},
	}

	// cases share state: registration must precede the duplicate and lookup cases
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code, env := s.do(tc.method, tc.path, tc.body)
			s.Equal(tc.expectedStatus, code)
			if tc.expectedEmail == "" {
				s.False(env.Success)
				s.JSONEq("null", string(env.Data))
				return
			}
			var u struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			}
			s.Require().NoError(json.Unmarshal(env.Data, &u))
			s.Equal(tc.expectedEmail, u.Email)
			s.Equal("user", u.Role)
			s.NotContains(string(env.Data), "password")
		})
	}

	var hash string
	s.Require().NoError(s.pg.Pool.QueryRow(s.ctx, `SELECT password_hash FROM "user" WHERE email = $1`, "jane@example.com").Scan(&hash))
	s.NotEqual("secret1", hash)
}

func (s *MonapiE2ESuite) TestProducts_CreateThenGet() {
	code, env := s.do(http.MethodPost, apiPrefix+"/products", map[string]any{"name": "Crayon", "price": 1.2})
	s.Require().Equal(http.StatusCreated, code)
	var created struct {
		ID int64 `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	s.GreaterOrEqual(created.ID, int64(6))

	code, env = s.do(http.MethodGet, apiPrefix+"/products/999999", nil)
	s.Equal(http.StatusNotFound, code)
	s.Equal("product not found", env.Message)
}

func TestMonapiE2ESuite(t *testing.T) {
	pgtest.SkipIfDisabled(t)
	suite.Run(t, new(MonapiE2ESuite))
}
