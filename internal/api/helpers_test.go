package api_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-household/internal/api"
	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/mocks"
	"github.com/mwhite7112/woodpantry-household/internal/service"
	"github.com/stretchr/testify/require"
)

func newTestIngredient(name string) db.Ingredient {
	return db.Ingredient{
		ID:          uuid.New(),
		Name:        name,
		Aliases:     []string{},
		Category:    sql.NullString{},
		DefaultUnit: sql.NullString{},
		CreatedAt:   time.Now(),
	}
}

func setupRouter(t *testing.T) (*mocks.MockQuerier, http.Handler) {
	t.Helper()
	mockQ := mocks.NewMockQuerier(t)
	svc := service.New(mockQ, nil, 0.8)
	router := api.NewRouter(svc)
	return mockQ, router
}

func setupRouterWithFetcher(t *testing.T) (*mocks.MockQuerier, *mocks.MockPageFetcher, http.Handler) {
	t.Helper()
	mockQ := mocks.NewMockQuerier(t)
	fetcher := mocks.NewMockPageFetcher(t)
	svc := service.New(mockQ, nil, 1.0, service.WithFetcher(fetcher))
	return mockQ, fetcher, api.NewRouter(svc)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// serve sends one request through the router. A nil body sends no body.
func serve(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
