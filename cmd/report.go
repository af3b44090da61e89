package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/menu"
)

// table writes tab-separated rows and keeps the first write error.
type table struct {
	tw  *tabwriter.Writer
	err error
}

func newTable(w io.Writer) *table {
	return &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t *table) row(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.tw, format, args...)
}

func (t *table) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.tw.Flush()
}

// WriteBatchReport prints a batch as a table followed by its summary.
func WriteBatchReport(w io.Writer, report commands.BatchReport) error {
	t := newTable(w)

	t.row("Batch %s (%s)\n", report.BatchID, report.Elapsed.Round(time.Millisecond))
	t.row("#\tID\tPRODUCT\tPRICE\tOUTCOME\tDETAIL\n")
	for _, r := range report.Results {
		detail := ""
		if r.Err != nil {
			detail = r.Err.Error()
		}
		t.row("%d\t%s\t%s\t%s\t%s\t%s\n", r.Position+1, r.RequestID, r.Product, r.Price, r.Outcome, detail)
	}
	if err := t.flush(); err != nil {
		return fmt.Errorf("write batch report: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\nShop: %s\n", report.Summary, report.Snapshot); err != nil {
		return fmt.Errorf("write batch summary: %w", err)
	}
	return nil
}

// WriteMenu prints the menu with its price statistics.
func WriteMenu(w io.Writer, m *menu.Menu) error {
	t := newTable(w)

	t.row("ITEM\tKIND\tPRICE\n")
	for _, item := range m.SortedByPrice(true) {
		t.row("%s\t%s\t%s\n", item.Name(), item.Kind(), item.Price())
	}
	if err := t.flush(); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%d items, average %s\n", m.Len(), m.Average()); err != nil {
		return fmt.Errorf("write menu summary: %w", err)
	}
	return nil
}
