package domain

import "context"

// Revalidator signals the page-cache layer that the given route paths are
// stale. Notification is fire-and-forget: implementations log failures but
// never surface them, so a failed notification cannot fail the mutation
// that triggered it.
type Revalidator interface {
	Revalidate(ctx context.Context, paths []string)
}
