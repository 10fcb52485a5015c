package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brunocosta1987/estoque/internal/core"
	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/shopspring/decimal"
)

// maxBodyBytes bounds API request bodies.
const maxBodyBytes = 1 << 16

// InboundPayload is the body of POST /api/inbound. unit_value accepts a JSON
// number or a decimal string.
type InboundPayload struct {
	Item      string          `json:"item"`
	Quantity  int64           `json:"quantity"`
	UnitValue decimal.Decimal `json:"unit_value"`
}

// OutboundPayload is the body of POST /api/outbound.
type OutboundPayload struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

// BalanceRow is one table row in API responses. Values are decimal strings.
type BalanceRow struct {
	Item       string `json:"item"`
	Quantity   int64  `json:"quantity"`
	UnitValue  string `json:"unit_value"`
	TotalValue string `json:"total_value"`
}

// BalanceResponse is the body of GET /api/balance.
type BalanceResponse struct {
	Rows     []BalanceRow `json:"rows"`
	Total    string       `json:"total"`
	Currency string       `json:"currency"`
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.Items(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	writeJSON(w, r, http.StatusOK, map[string][]string{"items": items})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	table, err := s.service.Balance(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, balanceResponse(table, s.service.Formatter().Currency()))
}

func balanceResponse(t inventory.Table, currency string) BalanceResponse {
	resp := BalanceResponse{
		Rows:     make([]BalanceRow, 0, t.Len()),
		Total:    t.GrandTotal().String(),
		Currency: currency,
	}
	for _, row := range t.Rows {
		resp.Rows = append(resp.Rows, BalanceRow{
			Item:       row.Item,
			Quantity:   row.Quantity,
			UnitValue:  row.UnitValue.String(),
			TotalValue: row.TotalValue.String(),
		})
	}
	return resp
}

func (s *Server) handleAPIInbound(w http.ResponseWriter, r *http.Request) {
	var p InboundPayload
	if err := decodeJSON(w, r, &p); err != nil {
		s.respondError(w, r, err)
		return
	}

	notice, err := s.service.Inbound(actionContext(r), p.Item, p.Quantity, p.UnitValue)
	if err != nil {
		s.respondNotice(w, r, err, notice)
		return
	}
	writeJSON(w, r, http.StatusOK, notice)
}

func (s *Server) handleAPIOutbound(w http.ResponseWriter, r *http.Request) {
	var p OutboundPayload
	if err := decodeJSON(w, r, &p); err != nil {
		s.respondError(w, r, err)
		return
	}

	notice, err := s.service.Outbound(actionContext(r), p.Item, p.Quantity)
	if err != nil {
		s.respondNotice(w, r, err, notice)
		return
	}
	writeJSON(w, r, http.StatusOK, notice)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedRequest, err)
	}
	return nil
}
