// Package core provides the ledger operations of the stock tracker.
//
// This package is the business layer between the presentation surfaces (web
// forms, CLI) and the stock file. It holds no table state of its own: every
// action loads the table fresh from its [TableStore], applies at most one
// operation from package inventory, and writes the table back only when the
// operation changed it.
//
// # Actions
//
//   - [Service.Inbound]: receive stock, creating the item if needed.
//   - [Service.Outbound]: remove stock, rejected when insufficient.
//   - [Service.Balance] and [Service.Items]: read-only views for the report
//     and the outbound item selection.
//   - [Service.ExportSpreadsheet]: the xlsx download of the report.
//
// Each mutating action returns a [Notice], the localized message shown to the
// user, alongside an error for rejected or failed actions.
//
// # Error Handling
//
// Technical errors are mapped to user-facing messages with [MapError]. Each
// category has a code that appears in logs and API responses:
//
//   - STK001-STK003: stock rejections (insufficient, empty table, unknown item)
//   - VAL001-VAL004: request validation
//   - FILE001-FILE003: stock file problems
//   - REQ001-REQ002: cancelled or timed out requests
//
// # Concurrency
//
// Two actions running at the same time on the same file are not isolated:
// both load, both save, and the later save wins. This matches the single-user
// design of the tracker and is left as is.
package core
