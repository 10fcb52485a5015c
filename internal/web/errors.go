package web

// errors.go provides unified error response handling for the web layer.
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls respondError(w, r, err)
//  3. Error is mapped via core.MapError to a code and HTTP status
//  4. Technical error is logged with the request ID for correlation
//  5. The localized message is rendered as JSON or as an HTML page

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/brunocosta1987/estoque/internal/core"
	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/brunocosta1987/estoque/internal/web/templates"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Action    string `json:"action,omitempty"`
	Code      string `json:"code"`
	Available *int64 `json:"available,omitempty"`
}

// respondError logs err and writes the mapped user message in the format
// the client asked for.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	s.respondNotice(w, r, err, s.service.ErrorNotice(err, nil))
}

// respondNotice is respondError with a notice the service already localized,
// such as a stock rejection naming the available quantity.
func (s *Server) respondNotice(w http.ResponseWriter, r *http.Request, err error, n core.Notice) {
	userMsg := core.MapError(err)
	status := userMsg.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	if wantsJSON(r) {
		respondErrorJSON(w, r, err, userMsg, n, status)
		return
	}
	s.render(w, r, status, templates.Page{},
		templates.ErrorAlert(n.Message, userMsg.Action, userMsg.Code))
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, r *http.Request, err error, msg core.UserMessage, n core.Notice, status int) {
	resp := ErrorResponse{
		Error:   msg.Message,
		Message: n.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	}

	var se *inventory.StockError
	if errors.As(err, &se) {
		resp.Available = &se.Available
	}

	writeJSON(w, r, status, resp)
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
