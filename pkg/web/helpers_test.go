package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func Test_RespondSuccess(t *testing.T) {
	// given
	rr := httptest.NewRecorder()

	// when
	RespondSuccess(rr, discardLogger, http.StatusCreated, "created", map[string]int{"id": 6})

	// then
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"created","data":{"id":6}}`, rr.Body.String())
}

func Test_RespondError(t *testing.T) {
	// given
	rr := httptest.NewRecorder()

	// when
	RespondError(rr, discardLogger, http.StatusBadRequest, "bad input")

	// then
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"bad input","data":null}`, rr.Body.String())
}

func Test_RespondJSON_NilPayload(t *testing.T) {
	// given
	rr := httptest.NewRecorder()

	// when
	RespondJSON(rr, discardLogger, http.StatusNoContent, nil)

	// then
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func Test_RespondJSON_EncodingError(t *testing.T) {
	// given
	rr := httptest.NewRecorder()

	// when
	RespondJSON(rr, discardLogger, http.StatusOK, map[string]any{"bad": make(chan int)})

	// then
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func Test_NotFound(t *testing.T) {
	// given
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)

	// when
	NotFound(discardLogger).ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"route not found","data":null}`, rr.Body.String())
}

func Test_ParseInt64Param(t *testing.T) {
	testCases := []struct {
		name        string
		value       string
		expected    int64
		expectError bool
	}{
		{name: "valid", value: "42", expected: 42},
		{name: "negative", value: "-3", expected: -3},
		{name: "not a number", value: "abc", expectError: true},
		{name: "float", value: "1.5", expectError: true},
		{name: "empty", value: "", expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(http.MethodGet, "/items/x", nil)
			req.SetPathValue("id", tc.value)

			// when
			id, err := ParseInt64Param(req, "id")

			// then
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func Test_DecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	testCases := []struct {
		name     string
		body     string
		expected string
		checkErr func(t *testing.T, err error)
	}{
		{name: "single value", body: `{"name":"Crayon"}`, expected: "Crayon"},
		{name: "trailing whitespace", body: "{\"name\":\"Crayon\"}\n  ", expected: "Crayon"},
		{name: "trailing garbage", body: `{"name":"Crayon"}garbage`, checkErr: func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrTrailingData)
		}},
		{name: "second object", body: `{"name":"Crayon"}{"name":"Gomme"}`, checkErr: func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrTrailingData)
		}},
		{name: "empty body", body: ``, checkErr: func(t *testing.T, err error) {
			assert.ErrorIs(t, err, io.EOF)
		}},
		{name: "type mismatch", body: `{"name":12}`, checkErr: func(t *testing.T, err error) {
			var typeErr *json.UnmarshalTypeError
			assert.ErrorAs(t, err, &typeErr)
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			err := DecodeJSON(strings.NewReader(tc.body), &p)
			if tc.checkErr != nil {
				require.Error(t, err)
				tc.checkErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.Name)
		})
	}
}
