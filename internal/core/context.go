package core

import "context"

type contextKey string

const ctxKeySource contextKey = "action_source"

// Sources of an action, recorded in log entries.
const (
	SourceWeb = "web"
	SourceAPI = "api"
	SourceCLI = "cli"
)

// ContextWithSource tags ctx with the surface that triggered the action.
func ContextWithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, ctxKeySource, source)
}

// SourceFromContext returns the source set by ContextWithSource, or "".
func SourceFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeySource).(string); ok {
		return v
	}
	return ""
}
