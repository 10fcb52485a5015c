package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/brunocosta1987/estoque/internal/i18n"
	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/brunocosta1987/estoque/internal/logging"
	"github.com/brunocosta1987/estoque/internal/report"
	"github.com/shopspring/decimal"
)

// TableStore loads and saves the whole stock table.
type TableStore interface {
	Load(ctx context.Context) (inventory.Table, error)
	Save(ctx context.Context, t inventory.Table) error
}

// Service provides the ledger actions over a TableStore.
type Service struct {
	store   TableStore
	catalog *i18n.Catalog
	format  report.Formatter
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog sets the catalog used for notices. The default is pt-BR.
func WithCatalog(c *i18n.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithFormatter sets the currency formatter used for display values.
func WithFormatter(f report.Formatter) Option {
	return func(s *Service) { s.format = f }
}

// NewService creates a Service backed by store.
func NewService(store TableStore, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = i18n.MustNew(i18n.DefaultLang)
	}
	return s
}

// Catalog returns the catalog used for notices and labels.
func (s *Service) Catalog() *i18n.Catalog { return s.catalog }

// Formatter returns the display formatter.
func (s *Service) Formatter() report.Formatter { return s.format }

// Inbound receives quantity units of item at unitValue each and saves the table.
func (s *Service) Inbound(ctx context.Context, item string, quantity int64, unitValue decimal.Decimal) (Notice, error) {
	logger := logging.WithFields(ctx,
		"action", "inbound",
		"source", SourceFromContext(ctx),
		"item", item,
		"quantity", quantity,
	)

	req := inventory.InboundRequest{Item: item, Quantity: quantity, UnitValue: unitValue}
	if err := req.Validate(); err != nil {
		logger.Info("inbound rejected", "error", err)
		return s.ErrorNotice(err, nil), err
	}

	table, err := s.store.Load(ctx)
	if err != nil {
		logger.Error("load stock failed", "error", err)
		return s.ErrorNotice(err, nil), err
	}
	if err := req.ValidateFor(table); err != nil {
		logger.Info("inbound rejected", "error", err)
		return s.ErrorNotice(err, nil), err
	}

	next, out := inventory.Inbound(table, req)
	if err := s.store.Save(ctx, next); err != nil {
		logger.Error("save stock failed", "error", err)
		return s.ErrorNotice(err, nil), err
	}

	logger.Info("inbound recorded",
		"outcome", out.Kind.String(),
		"created", out.Created,
		"available", out.Available,
		"unit_value", unitValue.String(),
	)

	return Notice{
		Level: LevelSuccess,
		Message: s.catalog.T("inbound.success", map[string]any{
			"Quantity": quantity,
			"Item":     item,
		}),
	}, nil
}

// Outbound removes quantity units of item and saves the table.
//
// An empty table yields a warning notice with inventory.ErrEmptyTable;
// insufficient stock and unknown items yield an error notice. In those
// cases the table is not saved.
func (s *Service) Outbound(ctx context.Context, item string, quantity int64) (Notice, error) {
	logger := logging.WithFields(ctx,
		"action", "outbound",
		"source", SourceFromContext(ctx),
		"item", item,
		"quantity", quantity,
	)

	req := inventory.OutboundRequest{Item: item, Quantity: quantity}
	if err := req.Validate(); err != nil {
		logger.Info("outbound rejected", "error", err)
		return s.ErrorNotice(err, nil), err
	}

	table, err := s.store.Load(ctx)
	if err != nil {
		logger.Error("load stock failed", "error", err)
		return s.ErrorNotice(err, nil), err
	}

	next, out, err := inventory.Outbound(table, req)
	if err != nil {
		logger.Info("outbound rejected",
			"outcome", out.Kind.String(),
			"available", out.Available,
			"error", err,
		)
		n := s.ErrorNotice(err, map[string]any{"Item": item, "Available": out.Available})
		if errors.Is(err, inventory.ErrEmptyTable) {
			n.Level = LevelWarning
		}
		return n, err
	}

	if err := s.store.Save(ctx, next); err != nil {
		logger.Error("save stock failed", "error", err)
		return s.ErrorNotice(err, nil), err
	}

	logger.Info("outbound recorded",
		"outcome", out.Kind.String(),
		"available", out.Available,
	)

	return Notice{
		Level: LevelSuccess,
		Message: s.catalog.T("outbound.success", map[string]any{
			"Quantity": quantity,
			"Item":     item,
		}),
	}, nil
}

// Balance returns the current table for the report view.
func (s *Service) Balance(ctx context.Context) (inventory.Table, error) {
	t, err := s.store.Load(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("load stock failed", "action", "balance", "error", err)
		return inventory.Table{}, err
	}
	return t, nil
}

// Items returns the item names in table order, for the outbound selection.
func (s *Service) Items(ctx context.Context) ([]string, error) {
	t, err := s.Balance(ctx)
	if err != nil {
		return nil, err
	}
	return t.Items(), nil
}

// ExportSpreadsheet writes the current table to w as an xlsx workbook.
func (s *Service) ExportSpreadsheet(ctx context.Context, w io.Writer) error {
	t, err := s.Balance(ctx)
	if err != nil {
		return err
	}
	if err := report.WriteXLSX(w, t); err != nil {
		logging.FromContext(ctx).Error("export spreadsheet failed", "error", err)
		return fmt.Errorf("export spreadsheet: %w", err)
	}
	logging.FromContext(ctx).Info("spreadsheet exported",
		"source", SourceFromContext(ctx),
		"items", t.Len(),
	)
	return nil
}

// BalanceMarkdown renders the current table as a localized Markdown report.
func (s *Service) BalanceMarkdown(ctx context.Context) (string, error) {
	t, err := s.Balance(ctx)
	if err != nil {
		return "", err
	}
	return report.Markdown(t, s.format, report.Labels{
		Heading: s.catalog.T("report.heading", nil),
		Empty:   s.catalog.T("report.empty", nil),
		Total:   s.catalog.T("report.total", nil),
	}), nil
}

// ErrorNotice localizes the user message mapped from err. data fills the
// message template, e.g. Item and Available for stock rejections.
func (s *Service) ErrorNotice(err error, data map[string]any) Notice {
	msg := MapError(err)
	return Notice{
		Level:   LevelError,
		Message: s.catalog.T(msg.MessageID, data),
		Code:    msg.Code,
	}
}
