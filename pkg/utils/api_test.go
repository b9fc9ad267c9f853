package utils

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/surah", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"code":200,"data":[1,2,3]}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL + "/v1/")
	var out struct {
		Code int   `json:"code"`
		Data []int `json:"data"`
	}
	err := api.Get(context.Background(), "/surah", url.Values{"page": {"1"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, 200, out.Code)
	assert.Equal(t, []int{1, 2, 3}, out.Data)
}

func TestAPIGetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	err := api.Get(context.Background(), "/surah", nil, &struct{}{})
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.Status)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAPIGetTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	err := NewAPI(base).Get(context.Background(), "/surah", nil, &struct{}{})
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.Status)
	assert.NotNil(t, netErr.Unwrap())
}

func TestAPIGetDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	err := NewAPI(srv.URL).Get(context.Background(), "/", nil, &struct{}{})
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "decode", netErr.Op)
}

func TestAPIGetCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewAPI(srv.URL).Get(ctx, "/", nil, &struct{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestAPIFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ID3-audio"))
	}))
	defer srv.Close()

	api := NewAPI("https://unused.example", WithRateLimit(100, 1))
	body, err := api.Fetch(context.Background(), srv.URL+"/audio/1.mp3")
	require.NoError(t, err)
	defer body.Close()

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "ID3-audio", string(content))
}

func TestAPITimeoutOption(t *testing.T) {
	api := NewAPI("https://example.com", WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, api.client.Timeout)

	api = NewAPI("https://example.com", WithTimeout(0))
	assert.Same(t, http.DefaultClient, api.client)
}
