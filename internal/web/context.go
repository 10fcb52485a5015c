package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/brunocosta1987/estoque/internal/core"
)

// actionContext tags the request context with the surface that issued the
// action, so service log entries tell form posts from API calls.
func actionContext(r *http.Request) context.Context {
	source := core.SourceWeb
	if strings.HasPrefix(r.URL.Path, "/api/") {
		source = core.SourceAPI
	}
	return core.ContextWithSource(r.Context(), source)
}
