package woocommerce

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/headless-commerce/storefront-gateway/internal/config"
	"github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// CartTokenHeader carries the opaque cart session token on cart-surface
// requests; the upstream may return a rotated replacement under the same
// header on any response.
const CartTokenHeader = "Cart-Token"

const (
	SurfaceStore = "store"
	SurfaceRest  = "rest"
	SurfaceCart  = "cart"
)

// Client issues single-shot, non-retried calls to the three upstream
// surfaces. Retrying is deliberately absent: a cart mutation has no
// idempotency key, so a retry could double-apply it.
type Client struct {
	httpClient *http.Client
	storeURL   string
	restURL    string
	authHeader string
}

func NewClient(cfg *config.WooCommerce) *Client {

	creds := base64.StdEncoding.EncodeToString([]byte(cfg.ConsumerKey + ":" + cfg.ConsumerSecret))

	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		storeURL:   cfg.StoreURL,
		restURL:    cfg.RestURL,
		authHeader: "Basic " + creds,
	}
}

// StoreResponse carries the upstream body plus the pagination headers the
// store surface attaches to listing queries.
type StoreResponse struct {
	Body       json.RawMessage
	Total      int
	TotalPages int
}

// Store calls the public catalog surface. No credentials are attached.
func (c *Client) Store(ctx context.Context, method, path string, body any) (*StoreResponse, error) {

	res, err := c.do(ctx, SurfaceStore, method, c.storeURL+path, body, "")
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.InternalError("Failed to read upstream response").WithError(err)
	}

	total, _ := strconv.Atoi(res.Header.Get("X-WP-Total"))

	totalPages, err := strconv.Atoi(res.Header.Get("X-WP-TotalPages"))
	if err != nil {
		totalPages = 1
	}

	return &StoreResponse{Body: data, Total: total, TotalPages: totalPages}, nil
}

// Rest calls the administrative surface with the shared-secret credential.
func (c *Client) Rest(ctx context.Context, method, path string, body any) (json.RawMessage, error) {

	res, err := c.do(ctx, SurfaceRest, method, c.restURL+path, body, "")
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.InternalError("Failed to read upstream response").WithError(err)
	}

	return data, nil
}

// CartResponse models token rotation explicitly: RotatedToken is non-empty
// only when the upstream issued a replacement, so the cookie layer is a pure
// function of this value.
type CartResponse struct {
	Body         json.RawMessage
	RotatedToken string
}

// Cart calls the stateful cart surface. An empty token means no session
// exists yet; the upstream then creates one and returns its token.
func (c *Client) Cart(ctx context.Context, token, method, path string, body any) (*CartResponse, error) {

	res, err := c.do(ctx, SurfaceCart, method, c.storeURL+path, body, token)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.InternalError("Failed to read upstream response").WithError(err)
	}

	return &CartResponse{Body: data, RotatedToken: res.Header.Get(CartTokenHeader)}, nil
}

// Ping probes the public surface with a minimal listing query. The caller
// bounds it with a context timeout; this is the only upstream call that
// carries one.
func (c *Client) Ping(ctx context.Context) (bool, time.Duration) {

	start := time.Now()

	res, err := c.do(ctx, SurfaceStore, http.MethodGet, c.storeURL+"/products?per_page=1", nil, "")
	if err != nil {
		return false, 0
	}
	res.Body.Close()

	return true, time.Since(start)
}

func (c *Client) do(ctx context.Context, surface, method, url string, body any, token string) (*http.Response, error) {

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.InternalError("Failed to encode upstream request body").WithError(err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, errors.InternalError("Failed to build upstream request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")

	switch surface {
	case SurfaceRest:
		req.Header.Set("Authorization", c.authHeader)
	case SurfaceCart:
		if token != "" {
			req.Header.Set(CartTokenHeader, token)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(surface, 0)

		return nil, errors.UpstreamError("Commerce platform is unreachable", http.StatusBadGateway).WithError(err)
	}

	metrics.RecordUpstreamRequest(surface, res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		defer res.Body.Close()

		return nil, upstreamFailure(surface, res)
	}

	return res, nil
}

// upstreamFailure surfaces the upstream's own status code and message. The
// body is best-effort JSON; anything unparseable falls back to a generic
// message for the surface.
func upstreamFailure(surface string, res *http.Response) error {

	message := genericMessage(surface, res.StatusCode)

	var payload struct {
		Message string `json:"message"`
	}

	if data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20)); err == nil {
		if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
			message = payload.Message
		}
	}

	return errors.UpstreamError(message, res.StatusCode)
}

func genericMessage(surface string, statusCode int) string {
	switch surface {
	case SurfaceRest:
		return fmt.Sprintf("WC REST API %d", statusCode)
	case SurfaceCart:
		return fmt.Sprintf("Cart API %d", statusCode)
	default:
		return fmt.Sprintf("WC Store API %d", statusCode)
	}
}
