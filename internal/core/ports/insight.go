package ports

import "context"

// InsightClient wraps the generative model call. Implementations return
// the raw response text; parsing and shape validation stay in the
// service.
type InsightClient interface {
	GenerateInsight(ctx context.Context, prompt string) (string, error)
}
