package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/headless-commerce/storefront-gateway/internal/api/middleware"
)

// NewRequest builds a test request whose context carries a discard logger,
// matching what the logging middleware would have injected.
func NewRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// NewRequestWithCookie is NewRequest plus a cart session cookie.
func NewRequestWithCookie(method, target string, body io.Reader, cookieName, cookieValue string) *http.Request {
	req := NewRequest(method, target, body)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})

	return req
}
