// Package store persists the stock table as a flat CSV file.
//
// The file holds one header row (Item, Quantidade, Valor_Unitário, Valor_Total)
// followed by one row per item. It is read whole on every load and rewritten
// whole on every save. There is no locking and no atomic replace: two writers
// racing on the same file end with the last writer's table.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/brunocosta1987/estoque/internal/inventory"
)

// DefaultPath is the file name used when none is configured.
const DefaultPath = "estoque.csv"

var (
	// ErrInvalidCSV wraps every parse failure of the file content.
	ErrInvalidCSV = errors.New("invalid csv")

	// ErrHeaderMismatch is returned when the file's header is not the fixed column set.
	ErrHeaderMismatch = fmt.Errorf("%w: header mismatch", ErrInvalidCSV)

	// ErrMalformedRow is returned when a data row cannot be parsed.
	ErrMalformedRow = fmt.Errorf("%w: malformed row", ErrInvalidCSV)
)

// Operations recorded in an OpError.
const (
	OpLoad = "load"
	OpSave = "save"
)

// OpError records a failed load or save and the file it concerned.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return "store: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// Store reads and writes the table at a single path.
type Store struct {
	path string
}

// New returns a store for the file at path.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the table from disk. A missing file yields an empty table.
// A file that parses but breaks the table invariants (duplicate items,
// negative quantities, totals that do not match) is an error like any parse
// failure. Failures are returned as *OpError.
func (s *Store) Load(ctx context.Context) (inventory.Table, error) {
	if err := ctx.Err(); err != nil {
		return inventory.Table{}, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return inventory.Table{}, nil
	}
	if err != nil {
		return inventory.Table{}, s.opError(OpLoad, err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return inventory.Table{}, s.opError(OpLoad, err)
	}
	if err := t.Validate(); err != nil {
		return inventory.Table{}, s.opError(OpLoad, err)
	}
	return t, nil
}

// Save overwrites the file with t. A table that breaks the invariants is
// refused before the file is touched, so Load can always read back what
// Save wrote.
func (s *Store) Save(ctx context.Context, t inventory.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return s.opError(OpSave, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return s.opError(OpSave, err)
	}

	if err := Encode(f, t); err != nil {
		f.Close()
		return s.opError(OpSave, err)
	}
	if err := f.Close(); err != nil {
		return s.opError(OpSave, err)
	}
	return nil
}

func (s *Store) opError(op string, err error) error {
	return &OpError{Op: op, Path: s.path, Err: err}
}

// Decode parses a table from CSV. An input with no content at all is an
// empty table; a header without rows is also an empty table.
func Decode(r io.Reader) (inventory.Table, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.FieldsPerRecord = len(inventory.Columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return inventory.Table{}, nil
	}
	if err != nil {
		return inventory.Table{}, readError(err)
	}
	if err := checkHeader(header); err != nil {
		return inventory.Table{}, err
	}

	var t inventory.Table
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return inventory.Table{}, readError(err)
		}

		r, err := decodeRow(rec)
		if err != nil {
			return inventory.Table{}, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

// Encode writes t as CSV, header first, rows in table order.
func Encode(w io.Writer, t inventory.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventory.Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		rec := []string{
			r.Item,
			formatQuantity(r.Quantity),
			formatDecimal(r.UnitValue),
			formatDecimal(r.TotalValue),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readError marks parser failures as ErrInvalidCSV. Errors from the
// underlying reader (a directory, a failing disk) pass through unchanged.
func readError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}
	return err
}

func checkHeader(header []string) error {
	for i, want := range inventory.Columns {
		if got := cleanCell(header[i]); !strings.EqualFold(got, want) {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrHeaderMismatch, i+1, got, want)
		}
	}
	return nil
}

func decodeRow(rec []string) (inventory.Row, error) {
	qty, err := parseQuantity(rec[1])
	if err != nil {
		return inventory.Row{}, err
	}
	unit, err := parseDecimal(inventory.ColumnUnitValue, rec[2])
	if err != nil {
		return inventory.Row{}, err
	}
	total, err := parseDecimal(inventory.ColumnTotalValue, rec[3])
	if err != nil {
		return inventory.Row{}, err
	}
	return inventory.Row{
		Item:       rec[0],
		Quantity:   qty,
		UnitValue:  unit,
		TotalValue: total,
	}, nil
}
