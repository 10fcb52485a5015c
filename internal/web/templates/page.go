// Package templates holds the HTML components of the web UI.
//
// Components are written in .templ files; the _templ.go files next to them
// are generated with `templ generate` and must not be edited by hand.
package templates

import (
	"github.com/brunocosta1987/estoque/internal/core"
	"github.com/brunocosta1987/estoque/internal/i18n"
)

// Menu entries, matched against Page.Active.
const (
	MenuInbound  = "inbound"
	MenuOutbound = "outbound"
	MenuReport   = "report"
)

// DownloadPath is the route serving the spreadsheet report.
const DownloadPath = "/relatorio/download"

// Page is the shared state of every full page.
type Page struct {
	Catalog *i18n.Catalog
	Active  string
	Notice  core.Notice
}

// InboundValues are the inbound form fields as typed, kept after a rejection.
type InboundValues struct {
	Item      string
	Quantity  string
	UnitValue string
}

// OutboundValues are the outbound form fields as typed.
type OutboundValues struct {
	Item     string
	Quantity string
}

func noticeLevel(n core.Notice) string {
	if n.Level == "" {
		return string(core.LevelInfo)
	}
	return string(n.Level)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
