package core

// error_messages.go maps technical errors to user-facing messages with codes.
//
// Codes by category:
//
//	STK001 - Insufficient stock: outbound asks for more than is on hand
//	STK002 - Empty table: outbound with no items registered
//	STK003 - Unknown item: outbound names an item that is not stocked
//	VAL001 - Invalid quantity: quantity below 1 or not a whole number
//	VAL002 - Invalid unit value: negative or not a number
//	VAL003 - Invalid item: blank item name
//	VAL004 - Malformed request: body or form cannot be decoded
//	FILE001 - Malformed stock file: header or rows cannot be parsed
//	FILE002 - Stock file I/O: permission or I/O failure on load or save
//	FILE003 - Invalid table: file parsed but breaks table invariants
//	REQ001 - Request cancelled
//	REQ002 - Request timed out
//	ERR000 - Anything else; check the logs for the technical error
//
// Known sentinel errors are matched first with errors.Is, then store
// failures by operation with errors.As. Errors that only carry text fall
// back to case-insensitive substring patterns; the first match wins.

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/brunocosta1987/estoque/internal/store"
)

// ErrMalformedRequest marks a request body the surfaces could not decode.
var ErrMalformedRequest = errors.New("malformed request")

// UserMessage provides user-facing error information.
type UserMessage struct {
	Message   string // What happened, in English, for logs and API clients
	Action    string // What to do about it
	Code      string // Error code for support reference
	MessageID string // Localized message id, see package i18n
	Status    int    // HTTP status for API responses
}

type sentinelMapping struct {
	target error
	msg    UserMessage
}

var sentinelMappings = []sentinelMapping{
	{
		target: inventory.ErrInsufficientStock,
		msg: UserMessage{
			Message:   "Insufficient stock for this item",
			Action:    "Reduce the quantity to at most the available stock",
			Code:      "STK001",
			MessageID: "outbound.insufficient",
			Status:    http.StatusConflict,
		},
	},
	{
		target: inventory.ErrEmptyTable,
		msg: UserMessage{
			Message:   "No items registered",
			Action:    "Record an inbound first",
			Code:      "STK002",
			MessageID: "outbound.empty",
			Status:    http.StatusUnprocessableEntity,
		},
	},
	{
		target: inventory.ErrUnknownItem,
		msg: UserMessage{
			Message:   "Item is not in stock",
			Action:    "Select one of the registered items",
			Code:      "STK003",
			MessageID: "outbound.unknown",
			Status:    http.StatusUnprocessableEntity,
		},
	},
	{
		target: inventory.ErrStockLimit,
		msg: UserMessage{
			Message:   "Quantity would exceed the largest stock the ledger can hold",
			Action:    "Record a smaller quantity",
			Code:      "VAL001",
			MessageID: "error.stock_limit",
			Status:    http.StatusBadRequest,
		},
	},
	{
		target: inventory.ErrInvalidQuantity,
		msg: UserMessage{
			Message:   "Quantity must be a whole number of at least 1",
			Action:    "Correct the quantity and submit again",
			Code:      "VAL001",
			MessageID: "error.invalid_quantity",
			Status:    http.StatusBadRequest,
		},
	},
	{
		target: inventory.ErrInvalidUnitValue,
		msg: UserMessage{
			Message:   "Unit value must be a number of at least 0",
			Action:    "Correct the unit value and submit again",
			Code:      "VAL002",
			MessageID: "error.invalid_unit_value",
			Status:    http.StatusBadRequest,
		},
	},
	{
		target: inventory.ErrInvalidItem,
		msg: UserMessage{
			Message:   "Item name is required",
			Action:    "Enter the item name",
			Code:      "VAL003",
			MessageID: "error.invalid_item",
			Status:    http.StatusBadRequest,
		},
	},
	{
		target: ErrMalformedRequest,
		msg: UserMessage{
			Message:   "Request could not be decoded",
			Action:    "Send a JSON object with the documented fields",
			Code:      "VAL004",
			MessageID: "error.malformed_request",
			Status:    http.StatusBadRequest,
		},
	},
	{
		target: store.ErrInvalidCSV,
		msg:    malformedFile,
	},
	{
		target: inventory.ErrInvalidTable,
		msg: UserMessage{
			Message:   "Stock file breaks table rules",
			Action:    "Fix duplicate items, negative values or inconsistent totals in the stock file",
			Code:      "FILE003",
			MessageID: "error.store_invalid",
			Status:    http.StatusInternalServerError,
		},
	},
	{
		target: context.Canceled,
		msg:    requestCancelled,
	},
	{
		target: context.DeadlineExceeded,
		msg:    requestTimeout,
	},
}

var (
	malformedFile = UserMessage{
		Message:   "Stock file is malformed",
		Action:    "Restore the stock file from a backup or fix it by hand",
		Code:      "FILE001",
		MessageID: "error.store",
		Status:    http.StatusInternalServerError,
	}
	fileDenied = UserMessage{
		Message:   "Stock file cannot be accessed",
		Action:    "Check the file permissions of the stock file",
		Code:      "FILE002",
		MessageID: "error.store",
		Status:    http.StatusInternalServerError,
	}
	fileUnreadable = UserMessage{
		Message:   "Stock file cannot be read",
		Action:    "Check that STORE_PATH names a readable file",
		Code:      "FILE002",
		MessageID: "error.store",
		Status:    http.StatusInternalServerError,
	}
	fileUnwritable = UserMessage{
		Message:   "Stock file cannot be written",
		Action:    "Check the permissions and free space of the stock file's directory",
		Code:      "FILE002",
		MessageID: "error.store_write",
		Status:    http.StatusInternalServerError,
	}
	requestCancelled = UserMessage{
		Message:   "Request was cancelled",
		Action:    "Please try again",
		Code:      "REQ001",
		MessageID: "error.unexpected",
		Status:    http.StatusServiceUnavailable,
	}
	requestTimeout = UserMessage{
		Message:   "Request timed out",
		Action:    "Please try again",
		Code:      "REQ002",
		MessageID: "error.unexpected",
		Status:    http.StatusGatewayTimeout,
	}
)

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns is the text fallback for errors without a sentinel.
var errorPatterns = []errorPattern{
	{pattern: "invalid csv", msg: malformedFile},
	{pattern: "invalid number", msg: malformedFile},
	{pattern: "permission denied", msg: fileDenied},
	{pattern: "context canceled", msg: requestCancelled},
	{pattern: "deadline exceeded", msg: requestTimeout},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message:   "An unexpected error occurred",
	Action:    "Please try again or check the server logs",
	Code:      "ERR000",
	MessageID: "error.unexpected",
	Status:    http.StatusInternalServerError,
}

// MapError converts a technical error to a user-facing message.
// A nil error yields the zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, m := range sentinelMappings {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}

	var opErr *store.OpError
	if errors.As(err, &opErr) {
		switch {
		case opErr.Op == store.OpSave:
			return fileUnwritable
		case errors.Is(err, fs.ErrPermission):
			return fileDenied
		default:
			return fileUnreadable
		}
	}
	if errors.Is(err, fs.ErrPermission) {
		return fileDenied
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError renders an error as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// IsRejection reports whether err is a stock or validation rejection: the
// user asked for something the ledger refuses, and nothing was changed.
func IsRejection(err error) bool {
	code := MapError(err).Code
	return strings.HasPrefix(code, "STK") || strings.HasPrefix(code, "VAL")
}
