package canvas_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campustools/canvas-mcp/internal/adapter/outbound/canvas"
)

func newTestClient(t *testing.T, handler http.Handler) (*canvas.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := canvas.New(server.Client(), server.URL, "sekrit-token", logger)
	return client, server
}

func TestClient_Get_Success(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodGet, r.Method)
		assert.Equal("/api/v1/courses/123/assignments", r.URL.Path)
		assert.Equal("Bearer sekrit-token", r.Header.Get("Authorization"))
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		assert.Equal("upcoming", r.URL.Query().Get("bucket"))
		assert.Equal([]string{"rubric", "rubric_assessment"}, r.URL.Query()["include[]"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 7, "name": "Essay"}]`))
	})
	client, _ := newTestClient(t, handler)

	params := url.Values{}
	params.Set("bucket", "upcoming")
	params.Add("include[]", "rubric")
	params.Add("include[]", "rubric_assessment")

	var out []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "courses/123/assignments", params, &out)
	require.NoError(err)
	require.Len(out, 1)
	assert.Equal(int64(7), out[0].ID)
	assert.Equal("Essay", out[0].Name)
}

func TestClient_Get_TrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/self/todo", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := canvas.New(server.Client(), server.URL+"/", "token", logger)

	err := client.Get(context.Background(), "users/self/todo", nil, nil)
	require.NoError(t, err)
}

func TestClient_Get_HTTPError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"Invalid access token."}]}`))
	})
	client, _ := newTestClient(t, handler)

	err := client.Get(context.Background(), "users/self/todo", nil, nil)
	require.Error(t, err)

	var httpErr *canvas.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "Invalid access token.")
}

func TestClient_Get_DecodeError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})
	client, _ := newTestClient(t, handler)

	var out []map[string]any
	err := client.Get(context.Background(), "users/self/todo", nil, &out)
	require.Error(t, err)

	var decodeErr *canvas.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestClient_Get_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close() // nothing listens here anymore

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := canvas.New(nil, addr, "token", logger)

	err := client.Get(context.Background(), "users/self/todo", nil, nil)
	require.Error(t, err)

	var unavailable *canvas.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestClient_Get_NilOutDiscardsBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`definitely not json`))
	})
	client, _ := newTestClient(t, handler)

	// With no destination the body is never decoded, so malformed JSON in a
	// 2xx response is not an error.
	err := client.Get(context.Background(), "users/self/todo", nil, nil)
	assert.NoError(t, err)
}

func TestClient_Get_ContextCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client, _ := newTestClient(t, handler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Get(ctx, "users/self/todo", nil, nil)
	require.Error(t, err)

	var unavailable *canvas.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.True(t, errors.Is(err, context.Canceled))
}
