// Package sheet renders driver summaries as downloadable files
package sheet

import (
	"strings"

	perr "paperwork/internal/platform/errors"
)

// Format selects the rendering of a summary table
type Format string

// supported formats
const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// BaseName is the download name without extension
const BaseName = "Driver_Paperwork_Summary"

// SheetName names the single worksheet of the xlsx output
const SheetName = "Summary"

// Formats lists every supported format, default first
func Formats() []Format { return []Format{FormatXLSX, FormatCSV, FormatJSON} }

// ParseFormat maps s to a Format. Empty means xlsx, case is ignored.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatXLSX, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", perr.WithField(perr.Validationf("format must be one of [xlsx csv json]"), "format")
}

// FileName is the attachment name for f
func FileName(f Format) string { return BaseName + "." + string(f) }

// ContentType is the media type for f
func ContentType(f Format) string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}
