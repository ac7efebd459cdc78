package llm

import "context"

// Client is a single-exchange completion backend: one user prompt in, one
// text response out. Any error from Complete means the exchange failed and
// the caller may switch to the local generator.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
