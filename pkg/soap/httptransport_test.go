package soap

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportPOST(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/xml", r.Header.Get("Content-Type"))
		assert.Equal(t, "Call", r.Header.Get("MessageType"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "<ping")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<pong/>"))
	}))
	defer srv.Close()

	tr := NewHTTPTransport()
	status, body, err := tr.POST(context.Background(), srv.URL, requestHeaders, []byte("<ping/>"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<pong/>", string(body))
}

func TestHTTPTransportNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewHTTPTransport()
	status, _, err := tr.POST(context.Background(), srv.URL, requestHeaders, []byte("<ping/>"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
}
