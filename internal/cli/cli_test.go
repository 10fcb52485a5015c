package cli

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

type testApp struct {
	*App
	out, err bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ta := &testApp{App: &App{
		StorePath: filepath.Join(t.TempDir(), "estoque.csv"),
		Locale:    "pt-BR",
		Currency:  "BRL",
		Plain:     true,
	}}
	ta.Out = &ta.out
	ta.Err = &ta.err
	return ta
}

func (ta *testApp) run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	ta.out.Reset()
	ta.err.Reset()

	fs := flag.NewFlagSet("estoque", flag.ContinueOnError)
	fs.SetOutput(&ta.err)
	RegisterFlags(fs, ta.App)

	cdr := subcommands.NewCommander(fs, "estoque")
	cdr.Output = &ta.out
	cdr.Error = &ta.err
	Register(cdr, ta.App)

	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return cdr.Execute(context.Background())
}

func TestInboundOutboundReport(t *testing.T) {
	app := newTestApp(t)

	if got := app.run(t, "entrada", "-item", "Bolt", "-q", "10", "-v", "0.50"); got != subcommands.ExitSuccess {
		t.Fatalf("entrada exit = %v, stderr = %s", got, app.err.String())
	}
	if want := "10 unidades de 'Bolt' registradas com sucesso.\n"; app.out.String() != want {
		t.Errorf("entrada output = %q, want %q", app.out.String(), want)
	}

	app.run(t, "entrada", "-item", "Bolt", "-q", "5", "-v", "0.60")

	if got := app.run(t, "saida", "-item", "Bolt", "-q", "20"); got != subcommands.ExitFailure {
		t.Errorf("saida exit = %v, want ExitFailure", got)
	}
	if !strings.Contains(app.err.String(), "Estoque insuficiente. Disponível: 15") {
		t.Errorf("saida stderr = %q", app.err.String())
	}

	if got := app.run(t, "saida", "-item", "Bolt", "-q", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("saida exit = %v, stderr = %s", got, app.err.String())
	}

	if got := app.run(t, "relatorio"); got != subcommands.ExitSuccess {
		t.Fatalf("relatorio exit = %v, stderr = %s", got, app.err.String())
	}
	for _, want := range []string{"# Relatório de Saldo", "| Bolt | 10 |", "R$"} {
		if !strings.Contains(app.out.String(), want) {
			t.Errorf("relatorio output missing %q:\n%s", want, app.out.String())
		}
	}
}

func TestOutbound_EmptyTable(t *testing.T) {
	app := newTestApp(t)

	if got := app.run(t, "saida", "-item", "Bolt", "-q", "1"); got != subcommands.ExitFailure {
		t.Errorf("exit = %v, want ExitFailure", got)
	}
	if !strings.Contains(app.err.String(), "Nenhum item cadastrado.") {
		t.Errorf("stderr = %q", app.err.String())
	}
	if _, err := os.Stat(app.StorePath); !os.IsNotExist(err) {
		t.Errorf("store file created by rejected outbound: %v", err)
	}
}

func TestUsageErrors(t *testing.T) {
	app := newTestApp(t)

	tests := [][]string{
		{"entrada", "-q", "1"},
		{"entrada", "-item", "Bolt", "-v", "abc"},
		{"saida"},
	}
	for _, args := range tests {
		if got := app.run(t, args...); got != subcommands.ExitUsageError {
			t.Errorf("%v exit = %v, want ExitUsageError", args, got)
		}
	}
}

func TestItems(t *testing.T) {
	app := newTestApp(t)
	app.run(t, "entrada", "-item", "Bolt", "-q", "1", "-v", "1")
	app.run(t, "entrada", "-item", "Nut", "-q", "1", "-v", "1")

	if got := app.run(t, "itens"); got != subcommands.ExitSuccess {
		t.Fatalf("itens exit = %v", got)
	}
	if app.out.String() != "Bolt\nNut\n" {
		t.Errorf("itens output = %q", app.out.String())
	}
}

func TestExport(t *testing.T) {
	app := newTestApp(t)
	app.run(t, "entrada", "-item", "Bolt", "-q", "15", "-v", "0.60")

	out := filepath.Join(t.TempDir(), "report.xlsx")
	if got := app.run(t, "exportar", "-o", out); got != subcommands.ExitSuccess {
		t.Fatalf("exportar exit = %v, stderr = %s", got, app.err.String())
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Estoque")
	if len(rows) != 2 || rows[1][0] != "Bolt" {
		t.Errorf("rows = %v", rows)
	}
}

func TestExport_FailedLoadKeepsExistingFile(t *testing.T) {
	app := newTestApp(t)
	if err := os.WriteFile(app.StorePath, []byte("garbage\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "report.xlsx")
	if err := os.WriteFile(out, []byte("previous report"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := app.run(t, "exportar", "-o", out); got != subcommands.ExitFailure {
		t.Errorf("exportar exit = %v, want ExitFailure", got)
	}
	if !strings.Contains(app.err.String(), "FILE001") {
		t.Errorf("stderr = %q, want FILE001", app.err.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous report" {
		t.Errorf("output file = %q, want it untouched", data)
	}
}

func TestStoreFlag(t *testing.T) {
	app := newTestApp(t)
	other := filepath.Join(t.TempDir(), "other.csv")

	app.run(t, "-store", other, "entrada", "-item", "Gear", "-q", "1", "-v", "1")

	if _, err := os.Stat(other); err != nil {
		t.Errorf("-store file not written: %v", err)
	}
}

func TestInvalidLocale(t *testing.T) {
	app := newTestApp(t)
	app.Locale = "??"

	if got := app.run(t, "itens"); got != subcommands.ExitFailure {
		t.Errorf("exit = %v, want ExitFailure", got)
	}
}
