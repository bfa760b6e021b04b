package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	errs "github.com/livp123/grouplog/pkg/errors"
)

func TestSend(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/log", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := New(srv.URL + "/log")
	err := c.Send(context.Background(), Message{Group: "Family", From: "Alice", Text: "Hello", Timestamp: 1700000000})
	require.NoError(t, err)
	assert.Equal(t, Message{Group: "Family", From: "Alice", Text: "Hello", Timestamp: 1700000000}, got)
}

func TestSendFillsTimestamp(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).Send(context.Background(), Message{Group: "g"}))
	assert.Positive(t, got.Timestamp)
}

func TestSendBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL).Send(context.Background(), Message{Group: "g"})
	assert.ErrorIs(t, err, errs.ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "status 500")
}

func TestRelayDropsOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	c := New(endpoint, WithLogger(zap.New(core).Sugar()))

	assert.False(t, c.Relay(context.Background(), Message{Group: "Family", From: "Alice", Text: "Hello"}))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("Family: Alice > Hello").Len())
}

func TestNewDefaults(t *testing.T) {
	c := New("")
	assert.Equal(t, DefaultEndpoint, c.Endpoint())
	assert.NotNil(t, c.http)

	custom := &http.Client{}
	assert.Same(t, custom, New("", WithHTTPClient(custom)).http)
}
