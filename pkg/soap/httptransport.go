package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"
)

// HTTPTransport is the default Transport, backed by net/http. It mirrors
// the teacher's soap.Client debug-dump behavior (net/http/httputil.Dump*
// gated by a Debug flag) but otherwise has no state beyond an *http.Client
// and optional logger — everything envelope/operation-specific lives in
// pkg/soap's Transport-agnostic helpers.
type HTTPTransport struct {
	Client *http.Client
	Debug  bool
	Log    *zerolog.Logger
}

// NewHTTPTransport returns an HTTPTransport using http.DefaultClient.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{Client: http.DefaultClient}
}

// POST implements Transport.
func (t *HTTPTransport) POST(ctx context.Context, url string, headers map[string]string, body []byte) (int, []byte, error) {
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if t.Debug {
		if dump, err := httputil.DumpRequestOut(req, true); err == nil && t.Log != nil {
			t.Log.Debug().Str("request", string(dump)).Msg("soap debug")
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	if t.Debug {
		if dump, err := httputil.DumpResponse(resp, true); err == nil && t.Log != nil {
			t.Log.Debug().Str("response", string(dump)).Msg("soap debug")
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("soap: reading response body: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
