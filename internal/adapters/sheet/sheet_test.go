package sheet

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"reflect"
	"testing"

	"paperwork/internal/core/paperwork"
	perr "paperwork/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

var sample = []paperwork.Summary{
	{Driver: "Jane Doe", Truck: "T-200", LastPaperworkDate: "01/20/2024", TripID: "TRIP-12"},
	{Driver: "Bob, Jr.", Truck: "N/A", LastPaperworkDate: "N/A", TripID: "N/A"},
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatXLSX, true},
		{"xlsx", FormatXLSX, true},
		{" CSV ", FormatCSV, true},
		{"Json", FormatJSON, true},
		{"xls", "", false},
		{"pdf", "", false},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if c.ok != (err == nil) || got != c.want {
			t.Fatalf("ParseFormat(%q) = %q, %v", c.in, got, err)
		}
		if err != nil {
			if e, _ := perr.As(err); e.Field() != "format" || e.Code() != perr.ErrorCodeValidation {
				t.Fatalf("unexpected error shape %v", err)
			}
		}
	}
}

func TestFileNameAndContentType(t *testing.T) {
	if got := FileName(FormatXLSX); got != "Driver_Paperwork_Summary.xlsx" {
		t.Fatalf("FileName = %q", got)
	}
	if got := FileName(FormatCSV); got != "Driver_Paperwork_Summary.csv" {
		t.Fatalf("FileName = %q", got)
	}
	if got := ContentType(FormatXLSX); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("ContentType xlsx = %q", got)
	}
	if got := ContentType(FormatCSV); got != "text/csv; charset=utf-8" {
		t.Fatalf("ContentType csv = %q", got)
	}
}

func TestXLSX_RoundTrip(t *testing.T) {
	data, err := XLSX(sample)
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{SheetName}) {
		t.Fatalf("sheets = %v", got)
	}
	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	want := [][]string{
		{"Driver", "Truck", "Last Paperwork Date", "Trip ID"},
		{"Jane Doe", "T-200", "01/20/2024", "TRIP-12"},
		{"Bob, Jr.", "N/A", "N/A", "N/A"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows =\n%q\nwant\n%q", rows, want)
	}
}

func TestXLSX_EmptyHasHeaderOnly(t *testing.T) {
	data, err := XLSX(nil)
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows(SheetName)
	if len(rows) != 1 || rows[0][0] != "Driver" {
		t.Fatalf("rows = %q", rows)
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	data, err := CSV(sample)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	got, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(got) != 3 || !reflect.DeepEqual(got[0], paperwork.Columns) || got[2][0] != "Bob, Jr." {
		t.Fatalf("csv = %q", got)
	}
}

func TestJSON_NeverNull(t *testing.T) {
	data, err := JSON(nil)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if string(bytes.TrimSpace(data)) != "[]" {
		t.Fatalf("JSON(nil) = %q", data)
	}

	data, _ = JSON(sample)
	var back []paperwork.Summary
	if err := json.Unmarshal(data, &back); err != nil || !reflect.DeepEqual(back, sample) {
		t.Fatalf("json = %s err=%v", data, err)
	}
}

func TestRender_Dispatch(t *testing.T) {
	for _, f := range Formats() {
		if _, err := Render(f, sample); err != nil {
			t.Fatalf("Render(%s): %v", f, err)
		}
	}
	if _, err := Render("pdf", sample); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
