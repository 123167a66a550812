package ctxutil

import (
	"context"
)

type ctxKey string

const (
	runIDKey ctxKey = "run_id"
	wordKey  ctxKey = "word"
)

// WithRunID stores the command invocation ID in the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the invocation ID from the context.
// Returns an empty string if absent.
func RunIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithWord stores the word currently being processed in the context.
func WithWord(ctx context.Context, word string) context.Context {
	return context.WithValue(ctx, wordKey, word)
}

// WordFromCtx extracts the word currently being processed.
// Returns an empty string if absent.
func WordFromCtx(ctx context.Context) string {
	w, _ := ctx.Value(wordKey).(string)
	return w
}
