package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/postly/internal/blogservice"
	"github.com/sushihentaime/postly/internal/suggestservice"
	"github.com/sushihentaime/postly/internal/userservice"
)

const testSecret = "a-test-secret-of-some-length"

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

type fakeGenerator struct {
	text string
	err  error
}

func (g fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.text + " <- " + prompt, g.err
}

// newTestApplication wires the real services on top of a sqlmock pool. gen may be nil to
// leave suggestions disabled.
func newTestApplication(t *testing.T, gen suggestservice.Generator) (*application, sqlmock.Sqlmock, *userservice.TokenMaker) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens, err := userservice.NewTokenMaker(testSecret, time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &Config{
		Port:           "4000",
		Environment:    "testing",
		Version:        "test",
		TrustedOrigins: []string{"http://localhost:5173"},
		LimiterEnabled: false,
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		userService:    userservice.NewUserService(db, nil, tokens, logger),
		blogService:    blogservice.NewBlogService(db),
		suggestService: suggestservice.NewSuggestService(gen),
		limiter:        newRateLimiter(1, 2),
	}

	return app, mock, tokens
}

func tokenFor(t *testing.T, tm *userservice.TokenMaker, userID int) string {
	t.Helper()

	token, err := tm.Create(userID)
	require.NoError(t, err)

	return token
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatalf("could not decode %q: %v", responseBody, err)
	}

	return res.StatusCode, res.Header, envelope
}

// request sends payload as JSON when it is not nil. An empty token sends no Authorization header.
func (ts *testServer) request(t *testing.T, method, path, token string, payload any) (int, http.Header, envelope) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path, token string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodGet, path, token, nil)
}

func (ts *testServer) post(t *testing.T, path, token string, payload any) (int, http.Header, envelope) {
	return ts.request(t, http.MethodPost, path, token, payload)
}

func (ts *testServer) put(t *testing.T, path, token string, payload any) (int, http.Header, envelope) {
	return ts.request(t, http.MethodPut, path, token, payload)
}

func (ts *testServer) delete(t *testing.T, path, token string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodDelete, path, token, nil)
}
