package sheet

import (
	"bytes"
	"encoding/csv"
	"encoding/json"

	"paperwork/internal/core/paperwork"
	perr "paperwork/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

// Render encodes rows in format f
func Render(f Format, rows []paperwork.Summary) ([]byte, error) {
	switch f {
	case FormatCSV:
		return CSV(rows)
	case FormatJSON:
		return JSON(rows)
	case FormatXLSX, "":
		return XLSX(rows)
	}
	return nil, perr.WithField(perr.Validationf("unsupported format %q", string(f)), "format")
}

// XLSX writes one worksheet with a bold header row and one row per summary
func XLSX(rows []paperwork.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// a new workbook starts with Sheet1
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx: name sheet")
	}

	header := make([]any, len(paperwork.Columns))
	for i, c := range paperwork.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx: write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx: header style")
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx: header style")
	}

	for i, s := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx: cell name")
		}
		// cells stay text so dates and N/A read back exactly
		vals := make([]any, 0, len(paperwork.Columns))
		for _, v := range s.Cells() {
			vals = append(vals, v)
		}
		if err := f.SetSheetRow(SheetName, cell, &vals); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "xlsx: write row %d", i+2)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "D", 22); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx: column width")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "xlsx: encode")
	}
	return buf.Bytes(), nil
}

// CSV writes the header and one record per summary
func CSV(rows []paperwork.Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(paperwork.Columns); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "csv: write header")
	}
	for _, s := range rows {
		if err := w.Write(s.Cells()); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "csv: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "csv: flush")
	}
	return buf.Bytes(), nil
}

// JSON encodes rows as an array, never null
func JSON(rows []paperwork.Summary) ([]byte, error) {
	if rows == nil {
		rows = []paperwork.Summary{}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "json: encode")
	}
	return append(b, '\n'), nil
}
