// Package report maintains the dispatch-schedule workbook.
//
// Each processed document appends one schedule row (header fields plus the
// pick/delivery flag) and its extracted product rows. The workbook is the
// office's shared tracking sheet, so appends are idempotent per invoice:
// re-processing a document whose invoice number is already present is
// skipped rather than duplicated.
package report

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ironbark/ordersheet/internal/extract"
)

const (
	scheduleSheet = "Sheet1"
	productsSheet = "Products"
)

var scheduleColumns = []string{
	"Date",
	"Invoice Number",
	"PO Number",
	"Company Name",
	"Pick/Delivery",
	"Pick up number-Time",
	"Pallets",
	"Done",
}

var productColumns = []string{"Invoice Number", "Code", "Description", "Quantity"}

// Entry is the per-document information appended to the schedule.
type Entry struct {
	Date        string
	InvoiceNo   string
	PONumber    string
	CompanyName string

	// Rows are the extracted product rows for the Products sheet.
	Rows []extract.Row
}

// PickDelivery returns the schedule flag: "P" (pickup) when a PO number was
// found on the sheet, "D" (delivery) otherwise.
func (e Entry) PickDelivery() string {
	if e.PONumber != "" {
		return "P"
	}
	return "D"
}

// Writer appends entries to a dispatch-schedule workbook, creating it with
// the expected columns when absent.
type Writer struct {
	path string
}

// NewWriter returns a writer for the workbook at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Append adds one document's entry to the workbook. It reports false
// without modifying the file when the entry's invoice number is already
// present.
func (w *Writer) Append(e Entry) (bool, error) {
	f, err := w.open()
	if err != nil {
		return false, err
	}
	defer f.Close()

	rows, err := f.GetRows(scheduleSheet)
	if err != nil {
		return false, fmt.Errorf("failed to read schedule sheet: %w", err)
	}

	if e.InvoiceNo != "" && len(rows) > 1 {
		for _, row := range rows[1:] {
			if len(row) > 1 && row[1] == e.InvoiceNo {
				return false, nil
			}
		}
	}

	center, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return false, fmt.Errorf("failed to create cell style: %w", err)
	}

	next := len(rows) + 1
	values := []interface{}{
		e.Date, e.InvoiceNo, e.PONumber, e.CompanyName,
		e.PickDelivery(), "", "", "",
	}
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, next)
		if err != nil {
			return false, err
		}
		if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
			return false, fmt.Errorf("failed to set %s: %w", cell, err)
		}
		if err := f.SetCellStyle(scheduleSheet, cell, cell, center); err != nil {
			return false, fmt.Errorf("failed to style %s: %w", cell, err)
		}
	}

	if err := w.appendProducts(f, e); err != nil {
		return false, err
	}

	if err := f.SaveAs(w.path); err != nil {
		return false, fmt.Errorf("failed to save workbook: %w", err)
	}
	return true, nil
}

// open loads the workbook, creating it with header rows when it does not
// exist yet.
func (w *Writer) open() (*excelize.File, error) {
	if _, err := os.Stat(w.path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat workbook: %w", err)
		}
		return w.create()
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", w.path, err)
	}
	return f, nil
}

func (w *Writer) create() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeHeader(f, scheduleSheet, scheduleColumns); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(productsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create products sheet: %w", err)
	}
	if err := writeHeader(f, productsSheet, productColumns); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeHeader(f *excelize.File, sheet string, columns []string) error {
	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header %s: %w", name, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) appendProducts(f *excelize.File, e Entry) error {
	if len(e.Rows) == 0 {
		return nil
	}

	// Older workbooks predate the Products sheet; add it on first use.
	idx, err := f.GetSheetIndex(productsSheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		if _, err := f.NewSheet(productsSheet); err != nil {
			return fmt.Errorf("failed to create products sheet: %w", err)
		}
		if err := writeHeader(f, productsSheet, productColumns); err != nil {
			return err
		}
	}

	rows, err := f.GetRows(productsSheet)
	if err != nil {
		return fmt.Errorf("failed to read products sheet: %w", err)
	}

	next := len(rows) + 1
	for i, r := range e.Rows {
		values := []interface{}{e.InvoiceNo, r.Code, r.Name, r.Quantity}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, next+i)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(productsSheet, cell, v); err != nil {
				return fmt.Errorf("failed to set %s: %w", cell, err)
			}
		}
	}
	return nil
}
