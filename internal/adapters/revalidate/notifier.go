// Package revalidate notifies the page-cache layer that rendered routes
// are stale after a content mutation.
package revalidate

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"munsociety/internal/domain"
)

// Config holds configuration for creating a notifier.
type Config struct {
	// URL of the cache layer's revalidation endpoint. Empty disables
	// notification entirely.
	URL string
	// Secret shared with the cache layer, sent as a query parameter.
	Secret string
}

// NewNotifier creates a Revalidator from config. An empty URL yields a
// no-op notifier.
func NewNotifier(config Config, client *http.Client, logger *slog.Logger) domain.Revalidator {
	if config.URL == "" {
		return &noopNotifier{}
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &httpNotifier{
		endpoint: config.URL,
		secret:   config.Secret,
		client:   client,
		logger:   logger,
	}
}

type httpNotifier struct {
	endpoint string
	secret   string
	client   *http.Client
	logger   *slog.Logger
}

// Revalidate POSTs each stale path to the cache layer. Failures are logged
// and swallowed: a notification problem must never fail the mutation that
// triggered it.
func (n *httpNotifier) Revalidate(ctx context.Context, paths []string) {
	for _, path := range paths {
		q := url.Values{}
		q.Set("path", path)
		if n.secret != "" {
			q.Set("secret", n.secret)
		}
		target := n.endpoint + "?" + q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
		if err != nil {
			n.logger.WarnContext(ctx, "revalidate request failed", "path", path, "err", err)
			continue
		}
		resp, err := n.client.Do(req)
		if err != nil {
			n.logger.WarnContext(ctx, "revalidate request failed", "path", path, "err", err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			n.logger.WarnContext(ctx, "revalidate rejected", "path", path, "status", resp.StatusCode)
		}
	}
}

type noopNotifier struct{}

func (*noopNotifier) Revalidate(context.Context, []string) {}
