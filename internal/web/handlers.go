package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/brunocosta1987/estoque/internal/core"
	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/brunocosta1987/estoque/internal/report"
	"github.com/brunocosta1987/estoque/internal/web/templates"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/entrada", http.StatusSeeOther)
}

func (s *Server) handleInboundPage(w http.ResponseWriter, r *http.Request) {
	s.renderInbound(w, r, http.StatusOK, core.Notice{}, templates.InboundValues{})
}

func (s *Server) handleInboundSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, fmt.Errorf("%w: %v", core.ErrMalformedRequest, err))
		return
	}

	values := templates.InboundValues{
		Item:      r.PostFormValue("item"),
		Quantity:  r.PostFormValue("quantidade"),
		UnitValue: r.PostFormValue("valor_unitario"),
	}

	var notice core.Notice
	qty, err := parseQuantity(values.Quantity)
	if err == nil {
		unit, perr := parseUnitValue(values.UnitValue)
		if perr != nil {
			err = perr
		} else {
			notice, err = s.service.Inbound(actionContext(r), values.Item, qty, unit)
		}
	}
	if err != nil {
		if notice.IsZero() {
			notice = s.service.ErrorNotice(err, nil)
		}
		if !core.IsRejection(err) {
			s.respondNotice(w, r, err, notice)
			return
		}
		s.renderInbound(w, r, core.MapError(err).Status, notice, values)
		return
	}

	s.renderInbound(w, r, http.StatusOK, notice, templates.InboundValues{})
}

func (s *Server) renderInbound(w http.ResponseWriter, r *http.Request, status int, n core.Notice, v templates.InboundValues) {
	s.render(w, r, status,
		templates.Page{Active: templates.MenuInbound, Notice: n},
		templates.InboundForm(s.service.Catalog(), s.service.Formatter().Symbol(), v))
}

func (s *Server) handleOutboundPage(w http.ResponseWriter, r *http.Request) {
	s.renderOutbound(w, r, http.StatusOK, core.Notice{}, templates.OutboundValues{})
}

func (s *Server) handleOutboundSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, fmt.Errorf("%w: %v", core.ErrMalformedRequest, err))
		return
	}

	values := templates.OutboundValues{
		Item:     r.PostFormValue("item"),
		Quantity: r.PostFormValue("quantidade"),
	}

	var notice core.Notice
	qty, err := parseQuantity(values.Quantity)
	if err == nil {
		notice, err = s.service.Outbound(actionContext(r), values.Item, qty)
	}
	if err != nil {
		if notice.IsZero() {
			notice = s.service.ErrorNotice(err, nil)
		}
		if !core.IsRejection(err) {
			s.respondNotice(w, r, err, notice)
			return
		}
		// The form itself shows the empty-table warning.
		if errors.Is(err, inventory.ErrEmptyTable) {
			notice = core.Notice{}
		}
		s.renderOutbound(w, r, core.MapError(err).Status, notice, values)
		return
	}

	s.renderOutbound(w, r, http.StatusOK, notice, templates.OutboundValues{Item: values.Item})
}

// renderOutbound reloads the item list so the selection reflects the file.
func (s *Server) renderOutbound(w http.ResponseWriter, r *http.Request, status int, n core.Notice, v templates.OutboundValues) {
	items, err := s.service.Items(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, status,
		templates.Page{Active: templates.MenuOutbound, Notice: n},
		templates.OutboundForm(s.service.Catalog(), items, v))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	table, err := s.service.Balance(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK,
		templates.Page{Active: templates.MenuReport},
		templates.ReportTable(s.service.Catalog(), table, s.service.Formatter()))
}

// handleReportDownload serves the spreadsheet report as an attachment.
func (s *Server) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.service.ExportSpreadsheet(actionContext(r), &buf); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
