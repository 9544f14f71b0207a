package github

import (
	"net/http"
	"strconv"
	"time"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// isRateLimited reports whether resp is a rate limit refusal. A 403 only counts when the
// remaining quota header is exhausted, since the API also uses 403 for permission errors.
func isRateLimited(resp *http.Response) bool {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		return resp.Header.Get("X-RateLimit-Remaining") == "0"
	default:
		return false
	}
}

func rateLimitError(header http.Header) error {
	err := zerr.With(domain.ErrRateLimited, "remaining", header.Get("X-RateLimit-Remaining"))

	if resetStr := header.Get("X-RateLimit-Reset"); resetStr != "" {
		if resetUnix, parseErr := strconv.ParseInt(resetStr, 10, 64); parseErr == nil {
			err = zerr.With(err, "reset", time.Unix(resetUnix, 0).UTC().Format(time.RFC3339))
		}
	}
	if retry := header.Get("Retry-After"); retry != "" {
		err = zerr.With(err, "retry_after", retry)
	}

	return err
}
