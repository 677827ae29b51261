// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		RetryDelay: 5 * time.Millisecond,
	})
}

// =============================================================================
// GENERATION TESTS
// =============================================================================

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Merhaba", r.URL.Query().Get("prompt"))
		w.Write([]byte(`{"message": "Selam! 😊"}`))
	}))
	defer srv.Close()

	msg, err := testClient(srv.URL).Generate(context.Background(), "Merhaba")
	require.NoError(t, err)
	assert.Equal(t, "Selam! 😊", msg)
}

func TestGenerate_SendsAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`{"message": "tamam"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.SetEndpoint(srv.URL, "gizli")
	_, err := c.Generate(context.Background(), "selam")
	require.NoError(t, err)
	assert.Equal(t, "gizli", gotKey)
}

func TestGenerate_LegacyBodyScan(t *testing.T) {
	// Not valid JSON; the literal token scan must still find the message
	// and interpret the \" and \n escapes.
	body := `status=ok "message": "Satır bir\nSatır \"iki\"" trailing`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	msg, err := testClient(srv.URL).Generate(context.Background(), "selam")
	require.NoError(t, err)
	assert.Equal(t, "Satır bir\nSatır \"iki\"", msg)
}

func TestGenerate_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "selam")
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestGenerate_ServerErrorRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "selam")
	assert.True(t, errors.Is(err, ErrServer))
	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
}

func TestGenerate_RecoversAfterTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"message": "toparladık"}`))
	}))
	defer srv.Close()

	msg, err := testClient(srv.URL).Generate(context.Background(), "selam")
	require.NoError(t, err)
	assert.Equal(t, "toparladık", msg)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerate_ClientErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "selam")
	assert.True(t, errors.Is(err, ErrServer))
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerate_InvalidEndpoint(t *testing.T) {
	c := testClient("not a url")
	_, err := c.Generate(context.Background(), "selam")
	assert.True(t, errors.Is(err, ErrInvalidEndpoint))
}

func TestGenerate_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
		w.Write([]byte(`{"message": "geç kaldım"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testClient(srv.URL).Generate(ctx, "selam")
	assert.Error(t, err)
}

// =============================================================================
// EXTRACTION TESTS
// =============================================================================

func TestExtractMessage_JSON(t *testing.T) {
	msg, err := ExtractMessage(`{"message": "merhaba", "status": "ok"}`)
	require.NoError(t, err)
	assert.Equal(t, "merhaba", msg)
}

func TestExtractMessage_JSONEmptyString(t *testing.T) {
	// An explicit empty message is a valid (if useless) response.
	msg, err := ExtractMessage(`{"message": ""}`)
	require.NoError(t, err)
	assert.Equal(t, "", msg)
}

func TestExtractMessage_LegacyEscapes(t *testing.T) {
	msg, err := ExtractMessage(`junk "message": "a\nb \"c\"" junk`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb \"c\"", msg)
}

func TestExtractMessage_UnterminatedValue(t *testing.T) {
	_, err := ExtractMessage(`junk "message": "never ends`)
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestExtractMessage_NoToken(t *testing.T) {
	_, err := ExtractMessage(`{"answer": "yok"}`)
	assert.True(t, errors.Is(err, ErrMissingField))
}
