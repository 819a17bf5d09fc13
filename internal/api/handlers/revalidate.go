package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/headless-commerce/storefront-gateway/internal/api/middleware"
	"github.com/headless-commerce/storefront-gateway/internal/cache"
	"github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/metrics"
	"github.com/headless-commerce/storefront-gateway/internal/models"
	"github.com/headless-commerce/storefront-gateway/internal/staleness"
	"github.com/headless-commerce/storefront-gateway/internal/utils/response"
)

const (
	SignatureHeader = "x-wc-webhook-signature"
	TopicHeader     = "x-wc-webhook-topic"
)

// RevalidateHandler receives signed catalog-change events and evicts the
// dependent cache entries. Verify-then-invalidate: nothing is touched until
// the signature over the raw body checks out, so an unauthenticated sender
// cannot force upstream round-trips by spamming invalidations.
type RevalidateHandler struct {
	secret []byte
	cache  cache.Cache
	marker staleness.Marker
}

func NewRevalidateHandler(secret string, c cache.Cache, marker staleness.Marker) *RevalidateHandler {
	return &RevalidateHandler{
		secret: []byte(secret),
		cache:  c,
		marker: marker,
	}
}

func (h *RevalidateHandler) Handle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		// The signature covers the exact raw bytes; the body must not be
		// parsed or re-serialized before verification.
		body, err := io.ReadAll(r.Body)
		if err != nil {
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}
		defer r.Body.Close()

		signature := r.Header.Get(SignatureHeader)
		topic := r.Header.Get(TopicHeader)

		if !h.verifySignature(body, signature) {
			logger.Warn("Webhook signature verification failed", "topic", topic)
			metrics.RecordWebhookDelivery("bad_signature")

			response.Error(w, errors.UnauthorizedError("Invalid signature"))

			return
		}

		var payload models.WebhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			metrics.RecordWebhookDelivery("bad_payload")

			response.Error(w, errors.BadRequestError("Parse error"))

			return
		}

		ctx := r.Context()

		// Every event evicts both coarse buckets regardless of topic;
		// finer topic-to-bucket mapping is traded away for simplicity.
		h.cache.DeleteByPattern(ctx, cache.ProductListKeyPrefix+":*")
		h.cache.DeleteByPattern(ctx, cache.CategoriesKeyPrefix+":*")
		h.marker.MarkStale(ctx, staleness.TagProducts, staleness.TagCategories)

		if payload.Slug != "" {
			h.cache.DeleteByPattern(ctx, cache.Key(cache.ProductKeyPrefix, payload.Slug))
			h.marker.MarkStale(ctx, staleness.ProductTag(payload.Slug))
		}

		logger.Info("Invalidation complete", "topic", topic, "slug", payload.Slug)
		metrics.RecordWebhookDelivery("ok")

		response.WriteJson(w, http.StatusOK, map[string]bool{"ok": true})

	}
}

func (h *RevalidateHandler) verifySignature(body []byte, signature string) bool {

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)

	computed := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(signature))
}
