package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ironbark/ordersheet/internal/extract"
)

func testEntry() Entry {
	return Entry{
		Date:        "2/09/2025",
		InvoiceNo:   "00009374",
		PONumber:    "3071",
		CompanyName: "Example Mechanical Pty Ltd",
		Rows: []extract.Row{
			{Code: "DUCMI170HB", Name: "DUCTED 17KW INDOOR R32", Quantity: 2},
		},
	}
}

func TestAppend_CreatesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	w := NewWriter(path)

	added, err := w.Append(testEntry())
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !added {
		t.Fatal("Append reported duplicate on a fresh workbook")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(scheduleSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("schedule rows = %d, want header + 1", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][4] != "Pick/Delivery" {
		t.Errorf("unexpected header row %v", rows[0])
	}
	if rows[1][1] != "00009374" {
		t.Errorf("invoice cell = %q, want 00009374", rows[1][1])
	}
	if rows[1][4] != "P" {
		t.Errorf("pick/delivery = %q, want P for entry with PO number", rows[1][4])
	}

	products, err := f.GetRows(productsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("product rows = %d, want header + 1", len(products))
	}
	if products[1][1] != "DUCMI170HB" || products[1][3] != "2" {
		t.Errorf("unexpected product row %v", products[1])
	}
}

func TestAppend_SkipsDuplicateInvoice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	w := NewWriter(path)

	if _, err := w.Append(testEntry()); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	added, err := w.Append(testEntry())
	if err != nil {
		t.Fatalf("second Append: %v", err)
	}
	if added {
		t.Fatal("Append added a row for an invoice already in the workbook")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(scheduleSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("schedule rows = %d after duplicate append, want 2", len(rows))
	}
}

func TestAppend_EmptyInvoiceNeverDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	w := NewWriter(path)

	e := testEntry()
	e.InvoiceNo = ""
	e.PONumber = ""
	for i := 0; i < 2; i++ {
		added, err := w.Append(e)
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		if !added {
			t.Fatalf("Append %d skipped an entry without an invoice number", i)
		}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(scheduleSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("schedule rows = %d, want header + 2", len(rows))
	}
	if rows[1][4] != "D" {
		t.Errorf("pick/delivery = %q, want D without a PO number", rows[1][4])
	}
}

func TestPickDelivery(t *testing.T) {
	if got := (Entry{PONumber: "3071"}).PickDelivery(); got != "P" {
		t.Errorf("PickDelivery with PO = %q, want P", got)
	}
	if got := (Entry{}).PickDelivery(); got != "D" {
		t.Errorf("PickDelivery without PO = %q, want D", got)
	}
}
