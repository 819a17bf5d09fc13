package middleware

import (
	"net/http"
	"strings"

	"github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/utils/response"
)

// RevalidatePath is exempt from the origin check: the webhook is a
// server-to-server delivery whose authenticity is established by its HMAC
// signature, not by a browser origin.
const RevalidatePath = "/api/revalidate"

type OriginGuard struct {
	siteURL string
}

func NewOriginGuard(siteURL string) *OriginGuard {
	return &OriginGuard{siteURL: siteURL}
}

// Guard rejects cross-origin browser calls to the internal API surface.
// Requests without an Origin header (curl, server-to-server) pass through.
func (g *OriginGuard) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if strings.HasPrefix(r.URL.Path, "/api/") && r.URL.Path != RevalidatePath {

			origin := r.Header.Get("Origin")

			if origin != "" && !strings.HasPrefix(origin, g.siteURL) {
				logger := LoggerFromContext(r.Context())
				logger.Warn("Cross-origin request rejected", "origin", origin)

				response.Error(w, errors.ForbiddenError("Forbidden"))

				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
