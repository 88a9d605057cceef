package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
)

var discard = slog.New(slog.DiscardHandler)

// NewRequest builds a handler request as the router would hand it over: path
// values set, a JSON content type when there is a body, and a silent
// request logger in the context.
func NewRequest(method, target string, body io.Reader, pathValues map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range pathValues {
		req.SetPathValue(key, value)
	}

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, discard))
}
